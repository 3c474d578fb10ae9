package hid

import (
	"sync"
	"time"
)

// MockDevice is an in-memory Device for tests. Every write is recorded and
// reads are served from a queue of scripted responses; an empty queue reads
// as "no data", the same as a silent device.
type MockDevice struct {
	mu        sync.Mutex
	writes    [][]byte
	responses [][]byte
	writeErr  error
	closes    int
}

func NewMockDevice() *MockDevice { return &MockDevice{} }

// Respond queues input reports to be returned by subsequent reads.
func (m *MockDevice) Respond(reports ...[]byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, reports...)
}

// FailWrites makes every following Write return err.
func (m *MockDevice) FailWrites(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErr = err
}

// Writes returns the reports written so far.
func (m *MockDevice) Writes() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]byte(nil), m.writes...)
}

// Closes returns how many times Close has been called.
func (m *MockDevice) Closes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closes
}

func (m *MockDevice) Write(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return 0, m.writeErr
	}
	cp := make([]byte, len(p))
	copy(cp, p)
	m.writes = append(m.writes, cp)
	return len(p), nil
}

func (m *MockDevice) Read(p []byte, _ time.Duration) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.responses) == 0 {
		return 0, nil
	}
	r := m.responses[0]
	m.responses = m.responses[1:]
	return copy(p, r), nil
}

func (m *MockDevice) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closes++
	return nil
}

// MockManager serves a fixed device list for tests.
type MockManager struct {
	Infos   []Info
	Devices map[string]Device // keyed by Info.Path
	OpenErr map[string]error

	mu     sync.Mutex
	opened []string
}

func (m *MockManager) List(vendorID, productID uint16) ([]Info, error) {
	var out []Info
	for _, info := range m.Infos {
		if info.VendorID == vendorID && info.ProductID == productID {
			out = append(out, info)
		}
	}
	return out, nil
}

func (m *MockManager) Open(info Info) (Device, error) {
	m.mu.Lock()
	m.opened = append(m.opened, info.Path)
	m.mu.Unlock()
	if err := m.OpenErr[info.Path]; err != nil {
		return nil, err
	}
	return m.Devices[info.Path], nil
}

// Opened returns the paths passed to Open, in order.
func (m *MockManager) Opened() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.opened...)
}
