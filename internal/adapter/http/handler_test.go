package httpadapter

import (
	"errors"
	"strings"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"orebound/internal/app/launch"
	"orebound/internal/app/ports"
)

func TestApplyCORSHeaders(t *testing.T) {
	ctx := &app.RequestContext{}
	applyCORSHeaders(ctx)

	if got := string(ctx.Response.Header.Peek("Access-Control-Allow-Origin")); got != "*" {
		t.Fatalf("allow-origin: got=%q want=%q", got, "*")
	}
	if got := string(ctx.Response.Header.Peek("Access-Control-Allow-Methods")); got != corsAllowMethods {
		t.Fatalf("allow-methods: got=%q want=%q", got, corsAllowMethods)
	}
	allowed := string(ctx.Response.Header.Peek("Access-Control-Allow-Headers"))
	if !strings.Contains(allowed, gameIDHeader) {
		t.Fatalf("allow-headers missing %s: %q", gameIDHeader, allowed)
	}
}

func TestGameIDHeaderFallback(t *testing.T) {
	ctx := &app.RequestContext{}
	if got := gameID(ctx); got != DefaultGameID {
		t.Fatalf("default: got=%q want=%q", got, DefaultGameID)
	}

	ctx = &app.RequestContext{}
	ctx.Request.Header.Set(gameIDHeader, " save-2 ")
	if got := gameID(ctx); got != "save-2" {
		t.Fatalf("header: got=%q want=%q", got, "save-2")
	}
}

func TestWriteErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{launch.ErrInvalidRequest, consts.StatusBadRequest},
		{ports.ErrNotFound, consts.StatusNotFound},
		{ports.ErrConflict, consts.StatusConflict},
		{errors.New("boom"), consts.StatusInternalServerError},
	}
	for _, tc := range cases {
		ctx := &app.RequestContext{}
		writeError(ctx, tc.err)
		if got := ctx.Response.StatusCode(); got != tc.status {
			t.Fatalf("%v: status got=%d want=%d", tc.err, got, tc.status)
		}
	}
}

func TestWriteErrorHidesInternalDetails(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, errors.New("dsn=postgres://secret"))
	body := string(ctx.Response.Body())
	if strings.Contains(body, "secret") {
		t.Fatalf("internal error leaked details: %s", body)
	}
	if !strings.Contains(body, "internal_error") {
		t.Fatalf("missing error code: %s", body)
	}
}
