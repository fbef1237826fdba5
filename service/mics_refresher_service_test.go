package services

import (
	"errors"
	"testing"

	"micfinder/config"
	"micfinder/localstore"
	"micfinder/models"
	"micfinder/state"
)

type fakeMicSource struct {
	payload []byte
	err     error
}

func (f *fakeMicSource) FetchMicsCSV() ([]byte, error) {
	return f.payload, f.err
}

const refresherCSV = `Venue Name,Location,Borough,Neighborhood,Day,Start Time,Signup Time,Host(s) / Organizer,Other Rules,Cost,Sign-Up Instructions,Geocodio Latitude,Geocodio Longitude
Grove 34,37-03 30th Ave,Queens,Astoria,Monday,7:00 PM,6:30 PM,Alex P.,,Free,In person,40.766960,-73.921350
`

func newRefresherFixture(t *testing.T, source *fakeMicSource) (*MicsRefresherService, *state.AppState, *localstore.Store) {
	t.Helper()
	st := state.NewAppState()
	local, err := localstore.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	return NewMicsRefresherService(source, st, local, nil), st, local
}

func TestMicsRefresherService_RefreshLoadsCatalog(t *testing.T) {
	source := &fakeMicSource{payload: []byte(refresherCSV)}
	mr, st, local := newRefresherFixture(t, source)

	if err := mr.RefreshMicData(); err != nil {
		t.Fatalf("RefreshMicData failed: %v", err)
	}

	mics := st.AllMics()
	if len(mics) != 1 || mics[0].Venue != "Grove 34" {
		t.Fatalf("Expected loaded catalog, got %v", mics)
	}
	if st.LoadError() {
		t.Errorf("Expected load-error flag cleared")
	}

	// The backup snapshot is written on every successful refresh.
	var backup []models.MicEvent
	if err := local.Get(config.MICS_BACKUP_STORAGE_KEY, &backup); err != nil {
		t.Fatalf("Expected backup snapshot, got %v", err)
	}
	if len(backup) != 1 {
		t.Errorf("Expected 1 mic in backup, got %d", len(backup))
	}
}

func TestMicsRefresherService_FetchFailureRestoresBackup(t *testing.T) {
	source := &fakeMicSource{payload: []byte(refresherCSV)}
	mr, st, _ := newRefresherFixture(t, source)

	if err := mr.RefreshMicData(); err != nil {
		t.Fatalf("Initial refresh failed: %v", err)
	}

	// Simulate a cold start with a broken source but a saved snapshot.
	st.Reset()
	source.err = errors.New("source unavailable")

	if err := mr.RefreshMicData(); err == nil {
		t.Fatalf("Expected error from failed fetch")
	}

	mics := st.AllMics()
	if len(mics) != 1 {
		t.Fatalf("Expected backup restored, got %d mics", len(mics))
	}
	if st.LoadError() {
		t.Errorf("Expected load-error flag cleared after restore")
	}
}

func TestMicsRefresherService_FetchFailureNoBackup(t *testing.T) {
	source := &fakeMicSource{err: errors.New("source unavailable")}
	mr, st, _ := newRefresherFixture(t, source)

	if err := mr.RefreshMicData(); err == nil {
		t.Fatalf("Expected error from failed fetch")
	}

	if len(st.AllMics()) != 0 {
		t.Errorf("Expected empty catalog")
	}
	if !st.LoadError() {
		t.Errorf("Expected load-error flag set")
	}
}

func TestMicsRefresherService_FailureKeepsPopulatedState(t *testing.T) {
	source := &fakeMicSource{payload: []byte(refresherCSV)}
	mr, st, _ := newRefresherFixture(t, source)

	if err := mr.RefreshMicData(); err != nil {
		t.Fatalf("Initial refresh failed: %v", err)
	}

	// A later failed refresh leaves the working set alone.
	source.err = errors.New("source unavailable")
	if err := mr.RefreshMicData(); err == nil {
		t.Fatalf("Expected error from failed fetch")
	}

	if len(st.AllMics()) != 1 {
		t.Errorf("Expected working set untouched, got %d", len(st.AllMics()))
	}
}
