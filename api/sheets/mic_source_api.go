package sheets

// MicSourceAPI defines the interface for fetching the published mic catalog
type MicSourceAPI interface {
	FetchMicsCSV() ([]byte, error)
}
