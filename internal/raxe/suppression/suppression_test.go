package suppression

import (
	"context"
	"testing"

	"github.com/raxe-ce/raxe-go/internal/raxe/domain"

	mdwerror "github.com/raxe-ce/raxe-go/foundation/core/error"
)

func TestApply_Suppress(t *testing.T) {
	audit := NewMemoryAuditLog()
	eng, err := New(
		[]domain.Suppression{{Pattern: "pi-*", Action: domain.ActionSuppress, Reason: "known false positive"}},
		nil,
		audit,
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, keep := eng.Apply(context.Background(), domain.Detection{RuleID: "pi-001"})
	if keep {
		t.Error("expected detection to be suppressed")
	}
	if len(audit.Entries()) != 1 {
		t.Errorf("audit entries = %d, want 1", len(audit.Entries()))
	}
}

func TestApply_Flag(t *testing.T) {
	eng, err := New(
		[]domain.Suppression{{Pattern: "pi-*", Action: domain.ActionFlag, Reason: "needs review"}},
		nil,
		NewMemoryAuditLog(),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	d, keep := eng.Apply(context.Background(), domain.Detection{RuleID: "pi-002"})
	if !keep {
		t.Error("flagged detections should be kept")
	}
	if !d.IsFlagged || d.SuppressionReason != "needs review" {
		t.Errorf("detection = %+v, want flagged with reason", d)
	}
}

func TestApply_NoMatch(t *testing.T) {
	eng, err := New(nil, nil, NewMemoryAuditLog())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	d, keep := eng.Apply(context.Background(), domain.Detection{RuleID: "pi-003"})
	if !keep || d.IsFlagged {
		t.Errorf("detection = %+v, want untouched", d)
	}
}

func TestApply_InlineOverridesScoped(t *testing.T) {
	eng, err := New(
		[]domain.Suppression{{Pattern: "pi-*", Action: domain.ActionSuppress, Reason: "scoped"}},
		[]domain.Suppression{{Pattern: "pi-*", Action: domain.ActionFlag, Reason: "inline override"}},
		NewMemoryAuditLog(),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	d, keep := eng.Apply(context.Background(), domain.Detection{RuleID: "pi-001"})
	if !keep {
		t.Error("inline FLAG should win over scoped SUPPRESS")
	}
	if d.SuppressionReason != "inline override" {
		t.Errorf("SuppressionReason = %q, want inline override", d.SuppressionReason)
	}
}

func TestNew_MalformedGlob(t *testing.T) {
	_, err := New([]domain.Suppression{{Pattern: "", Action: domain.ActionSuppress}}, nil, NewMemoryAuditLog())
	if !mdwerror.HasCode(err, mdwerror.CodeSuppressionMalformed) {
		t.Errorf("expected CodeSuppressionMalformed, got %v", err)
	}
}
