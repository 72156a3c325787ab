package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"nathanbeddoewebdev/hirectl/internal/domain"
)

// UploadCV sends a CV document for parsing.
func (c *Client) UploadCV(ctx context.Context, filename string, r io.Reader) (*domain.CVUpload, error) {
	body, err := multipartPayload("cv", filename, r, nil)
	if err != nil {
		return nil, err
	}
	var up domain.CVUpload
	if err := c.do(ctx, http.MethodPost, "/cv/upload", nil, body, &up); err != nil {
		return nil, fmt.Errorf("upload cv: %w", err)
	}
	if up.FileName == "" {
		up.FileName = filename
	}
	if up.Status == "" {
		up.Status = domain.CVStatusProcessing
	}
	return &up, nil
}

// ParseCV fetches the parser output for an upload. The backend answers
// 404 until parsing has finished.
func (c *Client) ParseCV(ctx context.Context, uploadID string) (*domain.ParsedCV, error) {
	var parsed domain.ParsedCV
	if err := c.getJSON(ctx, "/cv/"+escape(uploadID)+"/parsed", nil, &parsed); err != nil {
		return nil, fmt.Errorf("get parsed cv %q: %w", uploadID, err)
	}
	if parsed.UploadID == "" {
		parsed.UploadID = uploadID
	}
	return &parsed, nil
}

// ConfirmCV applies the (possibly edited) parse result to the profile.
func (c *Client) ConfirmCV(ctx context.Context, parsed domain.ParsedCV) (*domain.TalentProfile, error) {
	var p domain.TalentProfile
	if err := c.sendJSON(ctx, http.MethodPost, "/cv/"+escape(parsed.UploadID)+"/confirm", parsed, &p); err != nil {
		return nil, fmt.Errorf("confirm cv %q: %w", parsed.UploadID, err)
	}
	return &p, nil
}
