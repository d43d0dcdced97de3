package model

import (
	"context"
	"testing"
)

func TestScopeContext(t *testing.T) {
	if GetScopeFromContext(context.Background()).Authenticated() {
		t.Error("expected anonymous scope on empty context")
	}

	sc := GetScopeFromContext(SetScopeToContext(context.Background(), Scope{UserID: "u-1"}))
	if !sc.Authenticated() || sc.UserID != "u-1" {
		t.Errorf("GetScopeFromContext() = %+v", sc)
	}
}
