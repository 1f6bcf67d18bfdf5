package gsheets

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client wraps the Google Sheets service for one spreadsheet and implements
// the Grid interface the log sink writes through.
type Client struct {
	sheets        *sheets.Service
	spreadsheetID string
	sheetName     string
}

// NewClient authenticates with a service-account credentials file and binds
// to one spreadsheet. An empty sheetName targets the first sheet.
func NewClient(credentialsPath, spreadsheetID, sheetName string) (*Client, error) {
	ctx := context.Background()

	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	config, err := google.JWTConfigFromJSON(data, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}

	srv, err := sheets.NewService(ctx, option.WithHTTPClient(config.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Client{
		sheets:        srv,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

// ColumnValues returns every cell of one column, top to bottom. Rows shorter
// than the column render as empty strings.
func (c *Client) ColumnValues(col int) ([]string, error) {
	letter := columnLetter(col)
	resp, err := c.sheets.Spreadsheets.Values.
		Get(c.spreadsheetID, c.rangeRef(letter+":"+letter)).
		Do()
	if err != nil {
		return nil, fmt.Errorf("read column %s: %w", letter, err)
	}

	values := make([]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		if len(row) == 0 {
			values = append(values, "")
			continue
		}
		values = append(values, fmt.Sprintf("%v", row[0]))
	}
	return values, nil
}

// CellValue returns one cell as a string, empty when the cell has no value.
func (c *Client) CellValue(row, col int) (string, error) {
	ref := fmt.Sprintf("%s%d", columnLetter(col), row)
	resp, err := c.sheets.Spreadsheets.Values.
		Get(c.spreadsheetID, c.rangeRef(ref)).
		Do()
	if err != nil {
		return "", fmt.Errorf("read cell %s: %w", ref, err)
	}
	if len(resp.Values) == 0 || len(resp.Values[0]) == 0 {
		return "", nil
	}
	return fmt.Sprintf("%v", resp.Values[0][0]), nil
}

// UpdateCell writes one cell.
func (c *Client) UpdateCell(row, col int, value interface{}) error {
	ref := fmt.Sprintf("%s%d", columnLetter(col), row)
	valueRange := &sheets.ValueRange{Values: [][]interface{}{{value}}}

	_, err := c.sheets.Spreadsheets.Values.
		Update(c.spreadsheetID, c.rangeRef(ref), valueRange).
		ValueInputOption("USER_ENTERED").
		Do()
	if err != nil {
		return fmt.Errorf("write cell %s: %w", ref, err)
	}
	return nil
}

func (c *Client) rangeRef(ref string) string {
	if c.sheetName == "" {
		return ref
	}
	return fmt.Sprintf("'%s'!%s", c.sheetName, ref)
}

// columnLetter converts a 1-based column index to its A1 letter form.
func columnLetter(col int) string {
	letters := ""
	for col > 0 {
		col--
		letters = string(rune('A'+col%26)) + letters
		col /= 26
	}
	return letters
}
