package cmd

import (
	"context"
	"testing"
)

func TestUpdateCommandSkipsDevBuilds(t *testing.T) {
	if version != "(devel)" {
		t.Skip("only meaningful for source builds")
	}
	updateCmd.SetContext(context.Background())
	if err := updateCmd.RunE(updateCmd, nil); err != nil {
		t.Fatalf("dev build check should not error, got %v", err)
	}
}
