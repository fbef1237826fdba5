package sheets

import (
	"fmt"
	"log"
	"os"
)

// MicSourceClientMock serves the static CSV fixture from resources/ instead
// of hitting the network. Used outside prod and in tests.
type MicSourceClientMock struct {
	fixturePath string
}

func NewMicSourceClientMock(fixturePath string) *MicSourceClientMock {
	return &MicSourceClientMock{fixturePath: fixturePath}
}

func (c *MicSourceClientMock) FetchMicsCSV() ([]byte, error) {
	log.Printf("[MicSourceClientMock] Reading mic catalog fixture %s", c.fixturePath)
	data, err := os.ReadFile(c.fixturePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read mic catalog fixture %q: %w", c.fixturePath, err)
	}
	return data, nil
}
