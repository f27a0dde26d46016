package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"tea-import-service/internal/config"
	"tea-import-service/internal/importer/model"
)

func uploadRequest(t *testing.T, url, filename, content string, fields map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, url, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func testCfg() config.Config {
	return config.Config{MaxUploadMB: 8}
}

func TestPreview_CSV(t *testing.T) {
	csv := "Код,Назва,Од.вим.,Група\nTEA-001,Чай чорний,кг,чай\n"
	req := uploadRequest(t, "/import/preview", "stock.csv", csv, map[string]string{"sheet": ""})
	rec := httptest.NewRecorder()

	Preview(testCfg(), zerolog.Nop())(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res model.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Items, 1)
	require.Equal(t, "TEA-001", res.Items[0].Code)
	require.Equal(t, "tea_bulk", res.Items[0].Category)
}

func TestPreview_StructuralFailureIs422(t *testing.T) {
	csv := "перша,друга\nщось,ще щось\n"
	req := uploadRequest(t, "/import/preview", "stock.csv", csv, nil)
	rec := httptest.NewRecorder()

	Preview(testCfg(), zerolog.Nop())(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var ie model.ImportError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ie))
	require.Equal(t, model.FailNoRowsAfterHeader, ie.Reason)
}

func TestPreview_MissingFile(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, "/import/preview", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	Preview(testCfg(), zerolog.Nop())(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSheets_CSV(t *testing.T) {
	req := uploadRequest(t, "/import/sheets", "stock.csv", "a,b\n", nil)
	rec := httptest.NewRecorder()

	Sheets(testCfg(), zerolog.Nop())(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Sheets []string `json:"sheets"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, []string{"Sheet1"}, resp.Sheets)
}
