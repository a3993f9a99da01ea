package kurv

import (
	"testing"

	"github.com/davral/etfpulse/date"
)

func TestArchiveName(t *testing.T) {
	on := date.New(2025, 8, 29)
	if got, want := ArchiveName("kyld", on), "2025-08-29_KYLD_holdings.csv"; got != want {
		t.Errorf("ArchiveName() = %q, want %q", got, want)
	}
}

func TestEnrichedName(t *testing.T) {
	if got, want := EnrichedName("kyld"), "enriched_KYLD.csv"; got != want {
		t.Errorf("EnrichedName() = %q, want %q", got, want)
	}
}
