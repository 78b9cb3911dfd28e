// Package credit runs the statement assessment pipeline: parsed bank
// statement records in, feature vector and heuristic risk score out. The
// document-to-records conversion itself belongs to the Parser collaborator.
package credit

import (
	"context"
	"io"

	"github.com/nimeshpoudel7/enhancefund/internal/domain/statement"
)

type Usecase struct {
	parser statement.Parser
}

func NewUsecase(parser statement.Parser) *Usecase { return &Usecase{parser: parser} }

type AssessmentDTO struct {
	Features  statement.Features `json:"features"`
	RiskScore int                `json:"risk_score"`
}

// AssessDocument parses an uploaded statement and scores it.
func (u *Usecase) AssessDocument(ctx context.Context, document io.Reader) (*AssessmentDTO, error) {
	records, err := u.parser.Parse(ctx, document)
	if err != nil {
		return nil, err
	}
	return u.AssessRecords(records)
}

// AssessRecords scores an already-parsed transaction list.
func (u *Usecase) AssessRecords(records []statement.Record) (*AssessmentDTO, error) {
	features, err := statement.ExtractFeatures(records)
	if err != nil {
		return nil, err
	}
	return &AssessmentDTO{Features: features, RiskScore: statement.RiskScore(features)}, nil
}
