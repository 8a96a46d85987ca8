package usecase

import (
	"context"
	"fmt"

	"go-hrms-backend/internal/domain"
	"go-hrms-backend/pkg/apperror"
)

type screeningUsecase struct {
	reader domain.ResumeReader
	ai     domain.TextGenerator
}

func NewScreeningUsecase(reader domain.ResumeReader, ai domain.TextGenerator) domain.ScreeningUsecase {
	return &screeningUsecase{reader: reader, ai: ai}
}

// CompareResume extracts the resume text and asks the model to rate its
// alignment with the vacancy. The raw model text is returned untouched; there
// is no caching, no retry and no fallback heuristic.
func (u *screeningUsecase) CompareResume(ctx context.Context, resumeURL, vacancyDescription string) (string, error) {
	if resumeURL == "" || vacancyDescription == "" {
		return "", apperror.BadRequest("Resume URL and vacancy description are required")
	}

	resumeText, err := u.reader.Extract(ctx, resumeURL)
	if err != nil {
		return "", apperror.Upstream("Failed to read resume", err)
	}

	prompt := fmt.Sprintf(
		"You are an HR assistant. Compare the following resume against the job description and rate how well the candidate aligns with the role on a scale of 0 to 100. Reply with the score followed by a short justification.\n\nJob description:\n%s\n\nResume:\n%s",
		vacancyDescription, resumeText)

	score, err := u.ai.Chat(ctx, prompt)
	if err != nil {
		return "", apperror.Upstream("Failed to score resume", err)
	}
	return score, nil
}
