package tui

import "github.com/Veraticus/txnview/internal/view"

// snapshotMsg carries a controller snapshot taken at a mutation point.
type snapshotMsg struct {
	snapshot view.Snapshot
}

// actionDoneMsg is sent when a controller action returns.
type actionDoneMsg struct {
	err      error
	action   string
	snapshot view.Snapshot
}

// approvalMsg is sent when an approval toggle has been written.
type approvalMsg struct {
	err      error
	id       string
	approved bool
}
