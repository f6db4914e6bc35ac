package settings

import "testing"

func TestDefaults(t *testing.T) {
	svc := NewService()

	company := svc.Company()
	if company.Name != "HRX Inc." || company.Currency != "USD" {
		t.Fatalf("unexpected defaults: %+v", company)
	}

	prefs := svc.Preferences()
	if !prefs.Email || prefs.Performance {
		t.Fatalf("unexpected default preferences: %+v", prefs)
	}

	if len(svc.AuditLog()) != 3 {
		t.Fatalf("expected 3 seeded audit entries, got %d", len(svc.AuditLog()))
	}
}

func TestUpdateCompanyRecordsAudit(t *testing.T) {
	svc := NewService()

	updated := svc.Company()
	updated.Timezone = "Europe/Berlin"
	svc.UpdateCompany(updated, "Sarah Chen")

	if svc.Company().Timezone != "Europe/Berlin" {
		t.Fatalf("expected updated timezone, got %s", svc.Company().Timezone)
	}
	log := svc.AuditLog()
	if len(log) != 4 {
		t.Fatalf("expected a new audit entry, got %d entries", len(log))
	}
	if log[0].Action != "Updated company settings" || log[0].Actor != "Sarah Chen" {
		t.Fatalf("audit log must be newest first: %+v", log[0])
	}
}

func TestUpdatePreferences(t *testing.T) {
	svc := NewService()

	prefs := svc.Preferences()
	prefs.Performance = true
	svc.UpdatePreferences(prefs, "Sarah Chen")

	if !svc.Preferences().Performance {
		t.Fatal("expected performance preference enabled")
	}
	if svc.AuditLog()[0].Action != "Updated notification preferences" {
		t.Fatalf("unexpected audit entry: %+v", svc.AuditLog()[0])
	}
}
