package service

import (
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/supermarket/internal/market"
	"github.com/mmynk/supermarket/internal/validation"
)

// toConnectError maps domain failures onto Connect codes.
func toConnectError(err error) error {
	switch {
	case errors.Is(err, validation.ErrInvalidData):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, market.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, market.ErrDuplicateName):
		return connect.NewError(connect.CodeAlreadyExists, err)
	default:
		slog.Error("Internal error", "error", err)
		return connect.NewError(connect.CodeInternal, errors.New("internal error"))
	}
}
