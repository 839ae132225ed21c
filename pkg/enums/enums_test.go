package enums

import "testing"

func TestParseRole(t *testing.T) {
	role, err := ParseRole("gallery")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if role != RoleGallery {
		t.Fatalf("expected gallery, got %s", role)
	}
	if _, err := ParseRole("superuser"); err == nil {
		t.Fatal("expected error for unknown role")
	}
}

func TestRoleIsProvider(t *testing.T) {
	cases := map[Role]bool{
		RoleArtist:   true,
		RoleGallery:  true,
		RoleCustomer: false,
		RoleAdmin:    false,
	}
	for role, want := range cases {
		if got := role.IsProvider(); got != want {
			t.Fatalf("%s.IsProvider() = %v, want %v", role, got, want)
		}
	}
}

func TestProviderKindForRole(t *testing.T) {
	cases := map[Role]ProviderKind{
		RoleArtist:  ProviderKindArtist,
		RoleGallery: ProviderKindGallery,
		RoleAdmin:   ProviderKindGallery,
	}
	for role, want := range cases {
		kind, err := ProviderKindForRole(role)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", role, err)
		}
		if kind != want {
			t.Fatalf("expected %s kind for %s, got %s", want, role, kind)
		}
	}
	if _, err := ProviderKindForRole(RoleCustomer); err == nil {
		t.Fatal("expected error for non-provider role")
	}
}

func TestSizeBucketLabels(t *testing.T) {
	cases := map[SizeBucket]string{
		SizeBucketSmall:    "Small ≤40cm",
		SizeBucketMedium:   "Medium 41–100cm",
		SizeBucketLarge:    "Large 101–180cm",
		SizeBucketOversize: "Oversize 180cm+",
		SizeBucket("xxl"):  "",
	}
	for code, want := range cases {
		if got := code.Label(); got != want {
			t.Fatalf("%s.Label() = %q, want %q", code, got, want)
		}
	}
	if SizeBucket("xxl").IsValid() {
		t.Fatal("unknown size code should be invalid")
	}
}

func TestPeriodTagStoredValue(t *testing.T) {
	cases := map[PeriodTag]string{
		"2020s":              "2020",
		"1990s":              "1990",
		PeriodTagPreEarliest: "before 1980s",
		"renaissance":        "",
		"":                   "",
	}
	for tag, want := range cases {
		if got := tag.StoredValue(); got != want {
			t.Fatalf("%q.StoredValue() = %q, want %q", tag, got, want)
		}
	}
}

func TestParseLeaseStatus(t *testing.T) {
	status, err := ParseLeaseStatus("Available")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != LeaseStatusAvailable {
		t.Fatalf("expected Available, got %s", status)
	}
	if _, err := ParseLeaseStatus("on-loan"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}
