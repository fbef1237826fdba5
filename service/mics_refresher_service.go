package services

import (
	"log"
	"time"

	"micfinder/api/sheets"
	"micfinder/config"
	"micfinder/loader"
	"micfinder/localstore"
	"micfinder/models"
	"micfinder/state"
)

// MicsRefresherService loads the mic catalog from the published source into
// the app state and keeps it fresh on a schedule. When the source cannot be
// fetched it falls back to the last good snapshot before surfacing the
// load-error state.
type MicsRefresherService struct {
	source sheets.MicSourceAPI
	st     *state.AppState
	local  *localstore.Store
	render *RenderService
}

// NewMicsRefresherService constructs a new refresher with dependencies.
// render may be nil when no collaborators are attached.
func NewMicsRefresherService(
	source sheets.MicSourceAPI,
	st *state.AppState,
	local *localstore.Store,
	render *RenderService,
) *MicsRefresherService {
	return &MicsRefresherService{
		source: source,
		st:     st,
		local:  local,
		render: render,
	}
}

// StartPeriodicJob launches the background refresh loop at the given interval.
func (mr *MicsRefresherService) StartPeriodicJob(interval time.Duration) {
	go mr.startPeriodicJob(interval)
}

func (mr *MicsRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[MicsRefresherService] Running periodic mic catalog refresh.")
		if err := mr.RefreshMicData(); err != nil {
			log.Printf("[MicsRefresherService] RefreshMicData returned error: %v", err)
		} else {
			log.Println("[MicsRefresherService] RefreshMicData completed successfully.")
		}
	}
}

// RefreshMicData fetches and parses the catalog, replaces the working set,
// saves the backup snapshot and triggers a render pass. On fetch/parse
// failure it restores the backup; with no backup the state goes empty with
// the load-error flag set. The returned error reports the source failure
// either way.
func (mr *MicsRefresherService) RefreshMicData() error {
	payload, err := mr.source.FetchMicsCSV()
	if err != nil {
		log.Printf("[MicsRefresherService] Source fetch failed: %v", err)
		mr.restoreBackup()
		return err
	}

	mics, err := loader.ParseMicsBytes(payload)
	if err != nil {
		log.Printf("[MicsRefresherService] Source parse failed: %v", err)
		mr.restoreBackup()
		return err
	}

	log.Printf("[MicsRefresherService] Loaded %d mics", len(mics))
	mr.st.SetMics(mics)
	mr.st.SetLoadError(false)
	mr.saveBackup(mics)

	if mr.render != nil {
		mr.render.RenderNow()
	}
	return nil
}

func (mr *MicsRefresherService) saveBackup(mics []models.MicEvent) {
	if err := mr.local.Set(config.MICS_BACKUP_STORAGE_KEY, mics); err != nil {
		log.Printf("[MicsRefresherService] Backup save failed: %v", err)
	}
}

// restoreBackup falls back to the last good snapshot. An already-populated
// working set is left alone; the backup only matters on a cold start.
func (mr *MicsRefresherService) restoreBackup() {
	if len(mr.st.AllMics()) > 0 {
		return
	}

	var mics []models.MicEvent
	if err := mr.local.Get(config.MICS_BACKUP_STORAGE_KEY, &mics); err != nil {
		log.Printf("[MicsRefresherService] No usable backup snapshot: %v", err)
		mr.st.SetMics([]models.MicEvent{})
		mr.st.SetLoadError(true)
		return
	}

	log.Printf("[MicsRefresherService] Restored %d mics from backup snapshot", len(mics))
	mr.st.SetMics(mics)
	mr.st.SetLoadError(false)

	if mr.render != nil {
		mr.render.RenderNow()
	}
}
