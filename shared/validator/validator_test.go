package validator_test

import (
	"bytes"
	"camping/shared/failure"
	"camping/shared/validator"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type spotRequest struct {
	Name          string  `json:"name"            validate:"required,notblank"`
	Email         string  `json:"email"           validate:"omitempty,email"`
	PricePerNight float64 `json:"price_per_night" validate:"required,gt=0"`
	Role          string  `json:"role"            validate:"omitempty,oneof=user owner admin"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    spotRequest
		wantMsg string
	}{
		{
			name: "valid struct",
			data: spotRequest{Name: "Pine Ridge", Email: "host@example.com", PricePerNight: 45, Role: "owner"},
		},
		{
			name:    "missing required field uses json name",
			data:    spotRequest{PricePerNight: 45},
			wantMsg: "name is required",
		},
		{
			name:    "blank name",
			data:    spotRequest{Name: "   ", PricePerNight: 45},
			wantMsg: "name cannot be blank",
		},
		{
			name:    "invalid email",
			data:    spotRequest{Name: "Pine Ridge", Email: "nope", PricePerNight: 45},
			wantMsg: "email must be a valid email address",
		},
		{
			name:    "negative price",
			data:    spotRequest{Name: "Pine Ridge", PricePerNight: -3},
			wantMsg: "price_per_night must be greater than 0",
		},
		{
			name:    "unknown role",
			data:    spotRequest{Name: "Pine Ridge", PricePerNight: 10, Role: "root"},
			wantMsg: "role must be one of user owner admin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantMsg)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{name: "valid uuid", field: "4c7c3a0e-9d43-4c65-9a38-1b1a7c7fb0e2", tag: "uuid"},
		{name: "invalid uuid", field: "42", tag: "uuid", expectError: true},
		{name: "valid required string", field: "test", tag: "required"},
		{name: "empty required string", field: "", tag: "required", expectError: true},
		{name: "number in range", field: 25, tag: "gte=0,lte=100"},
		{name: "number out of range", field: 150, tag: "gte=0,lte=100", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateVar_MessageNamesValue(t *testing.T) {
	err := validator.ValidateVar("42", "uuid")

	assert.EqualError(t, err, "value must be a valid UUID")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{name: "valid JSON", jsonBody: `{"name":"Pine Ridge","price_per_night":45}`},
		{name: "invalid field", jsonBody: `{"name":"Pine Ridge","price_per_night":0}`, expectError: true},
		{name: "malformed JSON", jsonBody: `{"name":}`, expectError: true},
		{name: "empty JSON", jsonBody: `{}`, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data spotRequest
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

type uploadRequest struct {
	File *multipart.FileHeader `json:"file" validate:"required,mimetypes=image/png image/jpeg,maxfilesize=1"`
}

// pngHeader is the 8-byte PNG signature followed by an IHDR chunk start.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13, 'I', 'H', 'D', 'R'}

func multipartFile(t *testing.T, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", "upload.bin")
	assert.NoError(t, err)

	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	assert.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["file"][0]
}

func TestFileValidation(t *testing.T) {
	t.Run("png accepted", func(t *testing.T) {
		req := uploadRequest{File: multipartFile(t, pngHeader)}

		assert.NoError(t, validator.ValidateStruct(&req))
	})

	t.Run("plain text rejected by content sniffing", func(t *testing.T) {
		req := uploadRequest{File: multipartFile(t, []byte("definitely not an image"))}

		assert.EqualError(t, validator.ValidateStruct(&req), "file must be one of image/png image/jpeg")
	})

	t.Run("oversized file rejected", func(t *testing.T) {
		content := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 2<<20)...)
		req := uploadRequest{File: multipartFile(t, content)}

		assert.EqualError(t, validator.ValidateStruct(&req), "file must not exceed 1 MB")
	})
}
