// Package native loads shared libraries through the host loader: purego's dlopen family on
// unix and the kernel32 LoadLibrary family on windows. It also maintains the search-path
// environment variable so child processes and late loads see registered directories.
package native
