package ui

import "github.com/abelbrown/warroom/internal/complaint"

// Messages for Bubble Tea

// DatasetLoaded is sent when the enriched dataset is ready.
type DatasetLoaded struct {
	Items         []complaint.Enriched
	KeywordsIndex []string
	Err           error
}

// StateLoaded is sent when persisted UI state has been read.
type StateLoaded struct {
	Starred      map[int]bool
	TutorialDone bool
	Err          error
}

// StarSaved is sent after a star toggle has been persisted.
type StarSaved struct {
	ID  int
	Err error
}

// TutorialSaved is sent after the tutorial flag has been persisted.
type TutorialSaved struct {
	Err error
}

// loaderDoneMsg fires once the minimum loader display time has elapsed.
type loaderDoneMsg struct{}

// rederiveMsg asks for a deferred view re-derivation after the search
// throttle rejected an immediate one.
type rederiveMsg struct{}
