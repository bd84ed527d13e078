package terminal

import "bytes"

// Memory is an in-process Backend with a settable size and captured output
// Used for headless runs and tests
type Memory struct {
	width, height int
	sizeErr       error
	writeErr      error
	out           bytes.Buffer
}

// NewMemory creates a backend reporting the given size
func NewMemory(width, height int) *Memory {
	return &Memory{width: width, height: height}
}

// Resize changes the size reported by the next probe
func (m *Memory) Resize(width, height int) {
	m.width = width
	m.height = height
}

// FailSize makes subsequent probes return err; nil restores normal probing
func (m *Memory) FailSize(err error) {
	m.sizeErr = err
}

// FailWrite makes subsequent writes return err; nil restores normal writes
func (m *Memory) FailWrite(err error) {
	m.writeErr = err
}

// Size implements Backend
func (m *Memory) Size() (int, int, error) {
	if m.sizeErr != nil {
		return 0, 0, m.sizeErr
	}
	return m.width, m.height, nil
}

// Write implements Backend
func (m *Memory) Write(p []byte) (int, error) {
	if m.writeErr != nil {
		return 0, m.writeErr
	}
	return m.out.Write(p)
}

// Output returns everything written since the last Take
func (m *Memory) Output() string {
	return m.out.String()
}

// Take returns the captured output and resets it
func (m *Memory) Take() string {
	s := m.out.String()
	m.out.Reset()
	return s
}
