package spreadsheet

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"time"
)

// sheetIDPattern nhận diện document id trong URL chia sẻ của Google Sheets
var sheetIDPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)

// gidPattern nhận diện id của sheet con (gid) nếu URL có
var gidPattern = regexp.MustCompile(`[#&?]gid=([0-9]+)`)

// defaultSheetClient dùng cho fetch Google Sheet khi caller không inject client
var defaultSheetClient = &http.Client{Timeout: 15 * time.Second}

// GoogleSheetExportURL chuyển URL chia sẻ của một Google Sheet public thành
// endpoint export CSV. URL không chứa segment /spreadsheets/d/<id> là lỗi.
func GoogleSheetExportURL(shareURL string) (string, error) {
	matches := sheetIDPattern.FindStringSubmatch(shareURL)
	if matches == nil {
		return "", fmt.Errorf("unrecognized Google Sheets URL, expected a /spreadsheets/d/<id> link")
	}

	exportURL := fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv", matches[1])
	if gid := gidPattern.FindStringSubmatch(shareURL); gid != nil {
		exportURL += "&gid=" + gid[1]
	}
	return exportURL, nil
}

// FetchGoogleSheet fetch một Google Sheet public theo URL chia sẻ và parse
// phần export CSV. Fetch không thành công hoặc URL sai dạng đều fail fast
// với một lỗi mô tả, không trả dữ liệu một phần.
func FetchGoogleSheet(ctx context.Context, shareURL string) ([]RawRow, error) {
	exportURL, err := GoogleSheetExportURL(shareURL)
	if err != nil {
		return nil, err
	}
	return fetchCSV(ctx, defaultSheetClient, exportURL)
}

// fetchCSV tải một endpoint CSV và parse thành RawRow
func fetchCSV(ctx context.Context, client *http.Client, url string) ([]RawRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch spreadsheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("spreadsheet fetch returned status %d, make sure the sheet is shared publicly", resp.StatusCode)
	}

	return ParseCSV(resp.Body)
}
