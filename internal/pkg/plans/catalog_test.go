package plans

import "testing"

func TestGetKnownPlan(t *testing.T) {
	p, ok := Get("monthly")
	if !ok {
		t.Fatalf("expected monthly plan to exist")
	}
	if p.Name != "Monthly" || p.PriceMinorUnits != 49900 || p.DurationDays != 30 {
		t.Fatalf("unexpected monthly plan: %+v", p)
	}
	if p.AICredits != nil {
		t.Fatalf("expected monthly plan to be unmetered")
	}
}

func TestGetUnknownPlan(t *testing.T) {
	if _, ok := Get("platinum"); ok {
		t.Fatalf("expected unknown plan to be absent")
	}
	if _, ok := Get(""); ok {
		t.Fatalf("expected empty plan id to be absent")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	if len(all) != 7 {
		t.Fatalf("expected 7 plans, got %d", len(all))
	}

	delete(all, "monthly")
	if _, ok := Get("monthly"); !ok {
		t.Fatalf("mutating All() result must not touch the catalog")
	}
}
