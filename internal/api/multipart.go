package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"sort"
	"strings"
)

// FilePart is a binary attachment for a multipart mutation.
type FilePart struct {
	Field    string
	Filename string
	Content  []byte
}

// CallMultipart issues a mutation encoded as a multipart form: scalar
// fields become string parts, files become binary parts. Success and
// error handling match Call.
func (c *Client) CallMultipart(ctx context.Context, method, path string, fields map[string]string, files []FilePart) (json.RawMessage, error) {
	httpMethod, ok := allowedMethods[strings.ToLower(method)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMethod, method)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := writer.WriteField(name, fields[name]); err != nil {
			return nil, fmt.Errorf("write form field %s: %w", name, err)
		}
	}

	for _, file := range files {
		part, err := writer.CreateFormFile(file.Field, file.Filename)
		if err != nil {
			return nil, fmt.Errorf("create form file %s: %w", file.Filename, err)
		}
		if _, err := part.Write(file.Content); err != nil {
			return nil, fmt.Errorf("write form file %s: %w", file.Filename, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	return c.do(ctx, httpMethod, path, &buf, writer.FormDataContentType())
}
