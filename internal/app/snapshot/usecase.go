// Package snapshot exposes the save/load contract: export the versioned
// serializable snapshot, or import one into the stored game.
package snapshot

import (
	"context"
	"errors"
	"strings"

	"orebound/internal/app/ports"
	"orebound/internal/domain/game"
)

var ErrInvalidRequest = errors.New("invalid snapshot request")

type UseCase struct {
	States ports.GameStateRepository
}

// Export renders the current game as its plain serializable snapshot.
func (u UseCase) Export(ctx context.Context, gameID string) ([]byte, error) {
	if strings.TrimSpace(gameID) == "" {
		return nil, ErrInvalidRequest
	}
	state, err := u.States.Load(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return state.Snapshot()
}

// Import restores a snapshot into the stored game. A partially decodable
// snapshot applies what it can and returns the sectioned restore error; the
// applied portion is still persisted so the save reflects what was restored.
func (u UseCase) Import(ctx context.Context, gameID string, data []byte) error {
	if strings.TrimSpace(gameID) == "" || len(data) == 0 {
		return ErrInvalidRequest
	}
	state, err := u.States.Load(ctx, gameID)
	if err != nil {
		return err
	}
	restoreErr := state.Restore(data)
	var sectioned *game.RestoreError
	if restoreErr != nil && !errors.As(restoreErr, &sectioned) {
		// Envelope-level failure: nothing was applied, keep the stored game.
		return restoreErr
	}
	expected := state.Version
	state.Version++
	if err := u.States.SaveWithVersion(ctx, gameID, state, expected); err != nil {
		return err
	}
	return restoreErr
}
