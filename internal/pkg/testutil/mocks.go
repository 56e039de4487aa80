package testutil

import (
	"github.com/MGTheTrain/pqc-diagnostics/internal/domain/nativelib"
	"github.com/stretchr/testify/mock"
)

// MockLoader is a mock implementation of nativelib.Loader
type MockLoader struct {
	mock.Mock
}

func (m *MockLoader) Open(path string) (nativelib.Library, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(nativelib.Library), args.Error(1)
}

func (m *MockLoader) AddSearchDirectory(dir string) error {
	args := m.Called(dir)
	return args.Error(0)
}

func (m *MockLoader) OpenFromSearchPath(name string) (nativelib.Library, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(nativelib.Library), args.Error(1)
}

// MockLibrary is a mock implementation of nativelib.Library
type MockLibrary struct {
	mock.Mock
}

func (m *MockLibrary) Path() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockLibrary) Symbol(name string) (uintptr, error) {
	args := m.Called(name)
	return args.Get(0).(uintptr), args.Error(1)
}

func (m *MockLibrary) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockBinding is a mock implementation of pqc.Binding
type MockBinding struct {
	mock.Mock
}

func (m *MockBinding) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockBinding) Version() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockBinding) EnabledKEMMechanisms() ([]string, error) {
	return m.mechanisms(m.Called())
}

func (m *MockBinding) EnabledSigMechanisms() ([]string, error) {
	return m.mechanisms(m.Called())
}

func (m *MockBinding) SupportedKEMMechanisms() ([]string, error) {
	return m.mechanisms(m.Called())
}

func (m *MockBinding) SupportedSigMechanisms() ([]string, error) {
	return m.mechanisms(m.Called())
}

func (m *MockBinding) mechanisms(args mock.Arguments) ([]string, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
