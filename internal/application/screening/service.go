// Package screening orchestrates the full screening pipeline: SMILES
// validation, property resolution through the data source chain, rule
// evaluation, and ADMET classification.
package screening

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/turtacn/MolScreen/internal/domain/admet"
	"github.com/turtacn/MolScreen/internal/domain/druglikeness"
	"github.com/turtacn/MolScreen/internal/domain/molecule"
	"github.com/turtacn/MolScreen/internal/infrastructure/prediction"
	"github.com/turtacn/MolScreen/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MolScreen/pkg/errors"
	mtypes "github.com/turtacn/MolScreen/pkg/types/molecule"
)

// Resolver is the slice of the prediction chain the service depends on.
type Resolver interface {
	Resolve(ctx context.Context, smiles string) (*prediction.Result, []mtypes.SourceWarning, error)
	ResolveOne(ctx context.Context, name mtypes.SourceName, smiles string) (*prediction.Result, error)
	Sources() []mtypes.SourceName
}

// Observer receives completed screening outcomes for metrics collection.
type Observer interface {
	ObserveScreening(source mtypes.SourceName, lipinskiPasses bool, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveScreening(mtypes.SourceName, bool, time.Duration) {}

// Service is the screening application service.
type Service interface {
	// Screen runs the full pipeline for one molecule and returns the report.
	Screen(ctx context.Context, req mtypes.ScreeningRequest) (*mtypes.ScreeningReport, error)

	// Examples lists the example molecules offered by the web form.
	Examples() []mtypes.ExampleMolecule

	// Sources lists the configured data sources in consultation order.
	Sources() []mtypes.SourceName
}

type service struct {
	resolver Resolver
	logger   logging.Logger
	observer Observer
}

// NewService builds the screening service.  observer may be nil.
func NewService(resolver Resolver, log logging.Logger, observer Observer) Service {
	if observer == nil {
		observer = nopObserver{}
	}
	return &service{
		resolver: resolver,
		logger:   log.Named("screening"),
		observer: observer,
	}
}

func (s *service) Screen(ctx context.Context, req mtypes.ScreeningRequest) (*mtypes.ScreeningReport, error) {
	start := time.Now()

	mol, err := molecule.NewMolecule(req.SMILES)
	if err != nil {
		return nil, err
	}

	result, warnings, err := s.resolve(ctx, req, mol.Normalized)
	if err != nil {
		return nil, err
	}

	props := s.supplementProperties(result, mol)
	rules := druglikeness.Evaluate(props)
	profile := admet.Classify(result.Scores, props)

	formula := result.Formula
	if formula == "" {
		formula = mol.Formula()
	}

	report := &mtypes.ScreeningReport{
		ID:               uuid.NewString(),
		SMILES:           req.SMILES,
		NormalizedSMILES: mol.Normalized,
		MolecularFormula: formula,
		Properties:       props,
		Scores:           result.Scores,
		Lipinski:         rules.Lipinski,
		Veber:            rules.Veber,
		Egan:             rules.Egan,
		ADMET:            profile,
		Source:           result.Source,
		Warnings:         warnings,
		GeneratedAt:      time.Now().UTC(),
	}

	elapsed := time.Since(start)
	s.observer.ObserveScreening(result.Source, rules.Lipinski.Passes, elapsed)
	s.logger.Info("screening completed",
		logging.String("report_id", report.ID),
		logging.String("source", string(result.Source)),
		logging.Int("warnings", len(warnings)),
		logging.Bool("lipinski_passes", rules.Lipinski.Passes),
		logging.Duration("elapsed", elapsed))

	return report, nil
}

// resolve dispatches to the pinned source when the request names one,
// otherwise to the fallback chain.
func (s *service) resolve(ctx context.Context, req mtypes.ScreeningRequest, smiles string) (*prediction.Result, []mtypes.SourceWarning, error) {
	if req.Source == "" {
		return s.resolver.Resolve(ctx, smiles)
	}

	name := mtypes.SourceName(req.Source)
	result, err := s.resolver.ResolveOne(ctx, name, smiles)
	if err != nil {
		if errors.IsCode(err, errors.ErrCodeSourceUnavailable) {
			return nil, nil, err
		}
		return nil, nil, errors.Wrap(err, errors.ErrCodeScreeningFailed, "pinned source failed")
	}
	return result, nil, nil
}

// supplementProperties fills display-only structural counts that remote
// sources usually omit (ring counts, heavy atoms) from the local engine.
// Threshold-relevant fields always keep the source's values.
func (s *service) supplementProperties(result *prediction.Result, mol *molecule.Molecule) mtypes.PropertySet {
	props := result.Properties
	if props.RingCount == 0 && props.AromaticRings == 0 && props.HeavyAtoms == 0 {
		local := mol.Properties()
		props.RingCount = local.RingCount
		props.AromaticRings = local.AromaticRings
		props.HeavyAtoms = local.HeavyAtoms
	}
	return props
}

func (s *service) Examples() []mtypes.ExampleMolecule {
	return ExampleMolecules()
}

func (s *service) Sources() []mtypes.SourceName {
	return s.resolver.Sources()
}
