package adapters

import (
	"fmt"

	imagedom "github.com/shouni/gemini-image-kit/pkg/domain"
	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"

	"github.com/shouni/go-mascot-kit/pkg/domain"
)

// parseToResponse はレスポンスから最初の画像データを取り出します。
// 画像が含まれない場合は *domain.NoImageGeneratedError を返します。
func parseToResponse(resp *gemini.Response, variation string) (*imagedom.ImageResponse, error) {
	if resp == nil || resp.RawResponse == nil {
		return nil, fmt.Errorf("invalid response from Gemini (variation: %s)", variation)
	}
	if len(resp.RawResponse.Candidates) == 0 {
		return nil, &domain.NoImageGeneratedError{Variation: variation}
	}

	candidate := resp.RawResponse.Candidates[0]
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return &imagedom.ImageResponse{
					Data:     part.InlineData.Data,
					MimeType: part.InlineData.MIMEType,
				}, nil
			}
		}
	}

	reason := ""
	if candidate.FinishReason != genai.FinishReasonUnspecified && candidate.FinishReason != genai.FinishReasonStop {
		reason = string(candidate.FinishReason)
	}
	return nil, &domain.NoImageGeneratedError{Variation: variation, FinishReason: reason}
}
