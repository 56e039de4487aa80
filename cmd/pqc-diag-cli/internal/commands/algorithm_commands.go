package commands

import (
	"fmt"
	"os"

	"github.com/MGTheTrain/pqc-diagnostics/internal/app"
	"github.com/MGTheTrain/pqc-diagnostics/internal/domain/nativelib"
	"github.com/MGTheTrain/pqc-diagnostics/internal/domain/pqc"
	"github.com/MGTheTrain/pqc-diagnostics/internal/infrastructure/circl"
	"github.com/MGTheTrain/pqc-diagnostics/internal/infrastructure/liboqs"
	"github.com/MGTheTrain/pqc-diagnostics/internal/infrastructure/native"
	"github.com/MGTheTrain/pqc-diagnostics/internal/pkg/config"
	"github.com/MGTheTrain/pqc-diagnostics/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// AlgorithmCommandsHandler handles the algorithm listing and version commands
type AlgorithmCommandsHandler struct {
	// defaultDir locates the library when neither --dir nor --library pins it
	defaultDir func() (string, error)
}

// NewAlgorithmCommandsHandler initializes a new AlgorithmCommandsHandler
func NewAlgorithmCommandsHandler() *AlgorithmCommandsHandler {
	return &AlgorithmCommandsHandler{defaultDir: executableDir}
}

// algorithmContext is everything a command needs after configuration is resolved
type algorithmContext struct {
	cfg     *config.CLIConfig
	logger  logger.Logger
	loader  nativelib.Loader
	binding pqc.Binding
	path    string
}

func (h *AlgorithmCommandsHandler) setup(cmd *cobra.Command) (*algorithmContext, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	log, err := setupLogger(&cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	ac := &algorithmContext{cfg: cfg, logger: log}

	switch cfg.Library.Backend {
	case config.BackendCircl:
		ac.binding = circl.NewBinding()
	case config.BackendLibOQS:
		path, err := resolveLibraryPath(cfg.Library, h.defaultDir)
		if err != nil {
			return nil, err
		}
		ac.path = path
		ac.loader = native.NewLoader(log)

		// the binding searches the system loader paths when the file is not where we expect it
		library := path
		if _, err := os.Stat(path); err != nil {
			library = cfg.Library.Path
		}
		ac.binding, err = liboqs.NewBinding(ac.loader, library, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create liboqs binding: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported backend: %s", cfg.Library.Backend)
	}

	log.Debug("using backend ", ac.binding.Name())
	return ac, nil
}

// ListAlgorithmsCmd pre-loads the library and prints the KEM and signature mechanisms
func (h *AlgorithmCommandsHandler) ListAlgorithmsCmd(cmd *cobra.Command, _ []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	all, err := cmd.Flags().GetBool(FlagAll)
	if err != nil {
		return fmt.Errorf("invalid %s flag: %w", FlagAll, err)
	}

	ac, err := h.setup(cmd)
	if err != nil {
		return err
	}

	service, err := app.NewAlgorithmListingService(ac.loader, ac.binding, ac.logger)
	if err != nil {
		return fmt.Errorf("failed to create algorithm listing service: %w", err)
	}

	if ac.path != "" {
		service.Preload(ac.path)
	}

	listing := service.List(!all)

	if format == FormatJSON {
		return writeJSON(cmd.OutOrStdout(), listing)
	}
	app.RenderListing(app.NewReporter(cmd.OutOrStdout()), listing)
	return nil
}

// VersionCmd prints the version reported by the selected backend
func (h *AlgorithmCommandsHandler) VersionCmd(cmd *cobra.Command, _ []string) error {
	ac, err := h.setup(cmd)
	if err != nil {
		return err
	}

	if ac.path != "" {
		service, err := app.NewAlgorithmListingService(ac.loader, ac.binding, ac.logger)
		if err != nil {
			return fmt.Errorf("failed to create algorithm listing service: %w", err)
		}
		service.Preload(ac.path)
	}

	out := app.NewReporter(cmd.OutOrStdout())
	version, err := ac.binding.Version()
	if err != nil {
		out.Line(fmt.Sprintf("Error getting %s version: %v", ac.binding.Name(), err))
		return nil
	}
	out.Line(fmt.Sprintf("%s %s", ac.binding.Name(), version))
	return nil
}

// InitAlgorithmCommands registers the algorithm listing and version commands
func InitAlgorithmCommands(rootCmd *cobra.Command) error {
	handler := NewAlgorithmCommandsHandler()

	listCmd := &cobra.Command{
		Use:   "list-algorithms",
		Short: "List the KEM and signature mechanisms exposed by liboqs",
		Long: `Pre-loads the liboqs shared library found next to this binary (errors are ignored), then
prints the enabled KEM mechanisms and the enabled signature mechanisms, one per line.
A failure in one section is reported on a single line and does not affect the other.`,
		Args: cobra.NoArgs,
		RunE: handler.ListAlgorithmsCmd,
	}
	addLibraryFlags(listCmd)
	listCmd.Flags().String(FlagBackend, config.BackendLibOQS, "Binding to enumerate: liboqs or circl")
	listCmd.Flags().Bool(FlagAll, false, "List every supported mechanism, not only the enabled ones")
	listCmd.Flags().String(FlagFormat, FormatText, "Output format: text or json")
	rootCmd.AddCommand(listCmd)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version of the selected binding",
		Args:  cobra.NoArgs,
		RunE:  handler.VersionCmd,
	}
	addLibraryFlags(versionCmd)
	versionCmd.Flags().String(FlagBackend, config.BackendLibOQS, "Binding to query: liboqs or circl")
	rootCmd.AddCommand(versionCmd)

	return nil
}
