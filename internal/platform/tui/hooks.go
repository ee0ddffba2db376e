package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mysteries/internal/core"
	"github.com/vovakirdan/mysteries/internal/shell"
	"github.com/vovakirdan/mysteries/internal/storage"
)

// newJournalHooks records visits in the store. Writes are best-effort: a
// failure is logged and the kiosk keeps running.
func newJournalHooks(store *storage.Store, logger *log.Logger) shell.Hooks {
	if store == nil {
		return shell.Hooks{}
	}

	record := func(v shell.Visit, kind storage.Kind, detail string) {
		_, err := store.Record(storage.Entry{VisitID: v.ID, GameID: v.GameID, Kind: kind, Detail: detail})
		if err != nil {
			logger.Warn("journal write failed", "kind", kind, "game", v.GameID, "error", err)
		}
	}

	return shell.Hooks{
		OnEnter: func(v shell.Visit) {
			record(v, storage.KindEntered, "")
		},
		OnEvent: func(v shell.Visit, e core.Event) {
			if kind, ok := eventKinds[e.Kind]; ok {
				record(v, kind, e.Detail)
			}
		},
		OnExit: func(v shell.Visit, reason shell.ExitReason) {
			if reason == shell.ExitTimeout {
				record(v, storage.KindIdleReset, "")
				return
			}
			record(v, storage.KindLeft, reason.String())
		},
	}
}

var eventKinds = map[core.EventKind]storage.Kind{
	core.EventProgress:  storage.KindProgress,
	core.EventCompleted: storage.KindCompleted,
	core.EventRevealed:  storage.KindRevealed,
}
