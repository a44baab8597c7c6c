package ingesting

import (
	"bytes"
	"encoding/csv"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/allansduarte/placas-mundi-vendas/pkg/utils"
)

var (
	utf8BOM      = []byte{0xEF, 0xBB, 0xBF}
	zipSignature = []byte("PK\x03\x04")
	delimiters   = []rune{',', ';', '\t'}
)

// readTable lê o arquivo enviado e devolve as linhas, com o cabeçalho na primeira posição
func readTable(r io.Reader, fileName string) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler arquivo")
	}

	if isXLSX(data, fileName) {
		return readXLSX(data)
	}

	return readCSV(data)
}

func isXLSX(data []byte, fileName string) bool {
	if strings.EqualFold(filepath.Ext(fileName), ".xlsx") {
		return true
	}
	return bytes.HasPrefix(data, zipSignature)
}

// readXLSX usa a primeira aba da planilha
func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidFile, "erro ao abrir planilha: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.Wrap(ErrInvalidFile, "planilha sem abas")
	}

	// valores crus: datas chegam como número serial e não no formato de exibição da célula
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidFile, "erro ao ler aba %s: %v", sheets[0], err)
	}

	convertDateSerials(rows)

	logrus.WithFields(logrus.Fields{
		"sheet": sheets[0],
		"rows":  len(rows),
	}).Debug("Planilha XLSX lida")

	return rows, nil
}

// convertDateSerials reescreve a coluna DATA de células numéricas como dd/mm/aaaa.
// Datas digitadas como texto ficam como estão.
func convertDateSerials(rows [][]string) {
	if len(rows) == 0 {
		return
	}

	dateIndex := missingColumn
	for i, name := range rows[0] {
		if normalizeKey(name) == ColumnDate {
			dateIndex = i
			break
		}
	}
	if dateIndex == missingColumn {
		return
	}

	for _, row := range rows[1:] {
		if dateIndex < len(row) {
			row[dateIndex] = excelDate(row[dateIndex])
		}
	}
}

func excelDate(raw string) string {
	serial, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return raw
	}

	date, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return raw
	}
	return date.Format(utils.BRDateLayout)
}

func readCSV(data []byte) ([][]string, error) {
	text, err := decodeText(data)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = detectDelimiter(firstLine(text))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidFile, "erro ao interpretar CSV: %v", err)
	}

	return rows, nil
}

// decodeText remove o BOM e converte arquivos que não são UTF-8 a partir do Windows-1252,
// encoding comum em planilhas exportadas pelo Excel no Brasil
func decodeText(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data), nil
	}

	decoded, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidFile, "erro ao converter encoding: %v", err)
	}

	logrus.Debug("Arquivo convertido de Windows-1252 para UTF-8")
	return string(decoded), nil
}

func firstLine(text string) string {
	if idx := strings.IndexAny(text, "\r\n"); idx >= 0 {
		return text[:idx]
	}
	return text
}

// detectDelimiter escolhe o separador mais frequente do cabeçalho, ignorando trechos entre aspas
func detectDelimiter(header string) rune {
	counts := make(map[rune]int, len(delimiters))
	inQuotes := false
	for _, ch := range header {
		if ch == '"' {
			inQuotes = !inQuotes
			continue
		}
		if !inQuotes {
			counts[ch]++
		}
	}

	best := delimiters[0]
	for _, candidate := range delimiters[1:] {
		if counts[candidate] > counts[best] {
			best = candidate
		}
	}
	return best
}
