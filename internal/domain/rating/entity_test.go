package rating

import (
	"errors"
	"testing"
)

var testCriteria = []Criteria{
	{ID: 1, Name: "Thái độ làm việc"},
	{ID: 2, Name: "Đúng giờ"},
	{ID: 3, Name: "Chất lượng công việc"},
}

func TestValidateDetails_AllScored(t *testing.T) {
	err := ValidateDetails(testCriteria, []Detail{
		{CriteriaID: 1, Score: 5},
		{CriteriaID: 2, Score: 3},
		{CriteriaID: 3, Score: 4},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestValidateDetails_UnscoredCriterion(t *testing.T) {
	err := ValidateDetails(testCriteria, []Detail{
		{CriteriaID: 1, Score: 5},
		{CriteriaID: 2, Score: 3},
	})
	if !errors.Is(err, ErrUnscoredCriteria) {
		t.Fatalf("expected ErrUnscoredCriteria, got %v", err)
	}
}

func TestValidateDetails_ZeroScore(t *testing.T) {
	err := ValidateDetails(testCriteria, []Detail{
		{CriteriaID: 1, Score: 0},
		{CriteriaID: 2, Score: 3},
		{CriteriaID: 3, Score: 4},
	})
	if !errors.Is(err, ErrScoreOutOfRange) {
		t.Fatalf("expected ErrScoreOutOfRange, got %v", err)
	}
}

func TestValidateDetails_UnknownAndDuplicate(t *testing.T) {
	err := ValidateDetails(testCriteria, []Detail{{CriteriaID: 99, Score: 4}})
	if !errors.Is(err, ErrUnknownCriteria) {
		t.Fatalf("expected ErrUnknownCriteria, got %v", err)
	}

	err = ValidateDetails(testCriteria, []Detail{
		{CriteriaID: 1, Score: 4},
		{CriteriaID: 1, Score: 5},
		{CriteriaID: 2, Score: 3},
		{CriteriaID: 3, Score: 4},
	})
	if !errors.Is(err, ErrDuplicateCriteria) {
		t.Fatalf("expected ErrDuplicateCriteria, got %v", err)
	}
}
