package drama

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/OpenTraceLab/OpenTraceDRAM/pkg/addrmap"
)

// GenerateMapping runs the full pipeline: obtain the report from src,
// parse it, and build an address decoder. The parsed mapping is returned
// alongside the decoder so callers can show which bit ranges the tool
// actually reported.
//
// A nil parser config selects the default Row/Column/Bank vocabulary.
func GenerateMapping(
	ctx context.Context,
	src ReportSource,
	cfg *addrmap.Config,
	policy addrmap.MissingFieldPolicy,
) (*addrmap.Decoder, addrmap.Mapping, error) {
	report, err := src.Report(ctx)
	if err != nil {
		return nil, addrmap.Mapping{}, fmt.Errorf("drama: obtain report: %w", err)
	}

	parser, err := addrmap.NewParser(cfg)
	if err != nil {
		return nil, addrmap.Mapping{}, err
	}
	mapping := parser.Parse(report)
	log.Infof("parsed DRAM mapping with %d field(s)", mapping.Len())

	dec, err := addrmap.NewDecoder(mapping, policy)
	if err != nil {
		return nil, mapping, err
	}
	return dec, mapping, nil
}
