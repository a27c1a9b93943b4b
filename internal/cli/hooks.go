package cli

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/punishboard/pkg/observability"
)

// logHooks reports store and game events as debug log lines.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnLoad(ctx context.Context, backend string, count int, err error) {
	if err != nil {
		h.logger.Warn("load space list", "backend", backend, "error", err)
		return
	}
	h.logger.Debug("loaded space list", "backend", backend, "spaces", count)
}

func (h logHooks) OnSave(ctx context.Context, backend string, count int, err error) {
	if err != nil {
		h.logger.Warn("save space list", "backend", backend, "error", err)
		return
	}
	h.logger.Debug("saved space list", "backend", backend, "spaces", count)
}

func (h logHooks) OnStart(ctx context.Context, perimeterLength int) {
	h.logger.Debug("game started", "tiles", perimeterLength)
}

func (h logHooks) OnRoll(ctx context.Context, roll, from, to int) {
	h.logger.Debug("rolled", "roll", roll, "from", from, "to", to)
}

func (h logHooks) OnReset(ctx context.Context) {
	h.logger.Debug("game reset")
}

var (
	_ observability.StoreHooks = logHooks{}
	_ observability.GameHooks  = logHooks{}
)
