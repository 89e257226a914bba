package service

import (
	"context"
	"errors"
	"testing"

	"legaldoc-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockLabelClassifier struct {
	mock.Mock
}

func (m *mockLabelClassifier) RankLabels(ctx context.Context, text string, labels []models.CaseNature) ([]models.CaseNature, error) {
	args := m.Called(ctx, text, labels)
	ranked, _ := args.Get(0).([]models.CaseNature)
	return ranked, args.Error(1)
}

func TestClassify_SingleGroup(t *testing.T) {
	c := NewCaseClassifier()
	ctx := context.Background()

	tests := []struct {
		text string
		want models.CaseNature
	}{
		{"The accused was charged with murder and robbery.", models.CaseCriminal},
		{"Petition for divorce and custody of the child.", models.CaseFamily},
		{"Dispute over ownership and eviction from the premises.", models.CaseProperty},
		{"The partnership deed imposes an obligation on both parties.", models.CaseContract},
		{"Industrial pollution damaged the forest ecology.", models.CaseEnvironmental},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Classify(ctx, tt.text), tt.text)
	}
}

func TestClassify_HighestScoreWins(t *testing.T) {
	c := NewCaseClassifier()
	text := "The contract was signed. Later theft, fraud and assault were reported to police."
	assert.Equal(t, models.CaseCriminal, c.Classify(context.Background(), text))
}

func TestClassify_TieGoesToEarliestLabel(t *testing.T) {
	c := NewCaseClassifier()
	ctx := context.Background()

	assert.Equal(t, models.CaseCriminal, c.Classify(ctx, "theft during the divorce"))
	assert.Equal(t, models.CaseFamily, c.Classify(ctx, "dowry and a lease"))
	assert.Equal(t, models.CaseContract, c.Classify(ctx, "breach causing pollution"))
}

func TestClassify_SubstringCounting(t *testing.T) {
	c := NewCaseClassifier()
	scores := c.Scores("A landscape painting on LAND; the landlord objected.")
	assert.Equal(t, 3, scores[models.CaseProperty])

	whole := NewCaseClassifier(ClassifierWithMatchMode(MatchWholeWord))
	scores = whole.Scores("A landscape painting on LAND; the landlord objected.")
	assert.Equal(t, 1, scores[models.CaseProperty])
}

func TestClassify_MultiWordKeywords(t *testing.T) {
	c := NewCaseClassifier()
	scores := c.Scores("Charged under Section 420 and section 302.")
	assert.Equal(t, 2, scores[models.CaseCriminal])
}

func TestClassify_FallbackOnZeroScore(t *testing.T) {
	fallback := new(mockLabelClassifier)
	fallback.On("RankLabels", mock.Anything, "The hearing is adjourned.", models.CandidateCaseNatures()).
		Return([]models.CaseNature{models.CaseCivil, models.CaseContract}, nil).Once()

	c := NewCaseClassifier(ClassifierWithFallback(fallback))
	assert.Equal(t, models.CaseCivil, c.Classify(context.Background(), "The hearing is adjourned."))
	fallback.AssertExpectations(t)
}

func TestClassify_FallbackLabelReturnedUnchanged(t *testing.T) {
	fallback := new(mockLabelClassifier)
	fallback.On("RankLabels", mock.Anything, mock.Anything, mock.Anything).
		Return([]models.CaseNature{models.CaseEnvironmental}, nil)

	c := NewCaseClassifier(ClassifierWithFallback(fallback))
	assert.Equal(t, models.CaseEnvironmental, c.Classify(context.Background(), "nothing relevant"))
}

func TestClassify_EmptyTextInvokesFallback(t *testing.T) {
	fallback := new(mockLabelClassifier)
	fallback.On("RankLabels", mock.Anything, "", mock.Anything).
		Return([]models.CaseNature{models.CaseFamily}, nil).Once()

	c := NewCaseClassifier(ClassifierWithFallback(fallback))
	assert.Equal(t, models.CaseFamily, c.Classify(context.Background(), ""))
	fallback.AssertExpectations(t)
}

func TestClassify_FallbackNotCalledWhenKeywordMatches(t *testing.T) {
	fallback := new(mockLabelClassifier)
	c := NewCaseClassifier(ClassifierWithFallback(fallback))

	assert.Equal(t, models.CaseCriminal, c.Classify(context.Background(), "theft"))
	fallback.AssertNotCalled(t, "RankLabels", mock.Anything, mock.Anything, mock.Anything)
}

func TestClassify_FallbackFailureYieldsCivil(t *testing.T) {
	failing := new(mockLabelClassifier)
	failing.On("RankLabels", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("model offline"))
	assert.Equal(t, models.CaseCivil, NewCaseClassifier(ClassifierWithFallback(failing)).Classify(context.Background(), "hello"))

	empty := new(mockLabelClassifier)
	empty.On("RankLabels", mock.Anything, mock.Anything, mock.Anything).Return([]models.CaseNature{}, nil)
	assert.Equal(t, models.CaseCivil, NewCaseClassifier(ClassifierWithFallback(empty)).Classify(context.Background(), "hello"))

	assert.Equal(t, models.CaseCivil, NewCaseClassifier().Classify(context.Background(), "hello"))
}

func TestClassify_Deterministic(t *testing.T) {
	c := NewCaseClassifier()
	text := "land contract fraud divorce pollution"
	first := c.Classify(context.Background(), text)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, c.Classify(context.Background(), text))
	}
}
