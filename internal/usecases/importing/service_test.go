package importing

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/orders-backoffice-api/infrastructure/repository"
	"github.com/vfg2006/orders-backoffice-api/infrastructure/repository/mocks"
	"github.com/vfg2006/orders-backoffice-api/infrastructure/spreadsheet"
	spreadsheetmocks "github.com/vfg2006/orders-backoffice-api/infrastructure/spreadsheet/mocks"
	"github.com/vfg2006/orders-backoffice-api/infrastructure/storage"
	"github.com/vfg2006/orders-backoffice-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// fakeTransactor executa a função e simula o commit
type fakeTransactor struct {
	commitErr error
}

func (f *fakeTransactor) RunInTransaction(_ context.Context, fn func(*sql.Tx) error) error {
	if err := fn(nil); err != nil {
		return err
	}
	return f.commitErr
}

// memorySites simula a tabela de sites com chave única no nome
type memorySites struct {
	byName map[string]domain.SiteFields
	calls  []string
}

func newMemorySites() *memorySites {
	return &memorySites{byName: map[string]domain.SiteFields{}}
}

func (m *memorySites) upsert(_ context.Context, name string, fields domain.SiteFields) (*domain.Site, error) {
	m.calls = append(m.calls, name)
	m.byName[name] = fields
	return &domain.Site{Name: name, URL: fields.URL, AdminFee: fields.AdminFee, IsActive: fields.IsActive}, nil
}

type importFixture struct {
	service *Service
	fs      afero.Fs
	sites   *mocks.MockSiteRepository
	tx      *fakeTransactor
}

func newImportFixture(t *testing.T) *importFixture {
	ctrl := gomock.NewController(t)

	sites := mocks.NewMockSiteRepository(ctrl)
	sites.EXPECT().WithTx(gomock.Any()).Return(sites).AnyTimes()

	fs := afero.NewMemMapFs()
	tx := &fakeTransactor{}

	return &importFixture{
		service: &Service{
			tx:      tx,
			sites:   sites,
			reader:  spreadsheet.NewFileReader(),
			storage: storage.NewStorage(fs),
			tempDir: "temp-imports",
		},
		fs:    fs,
		sites: sites,
		tx:    tx,
	}
}

func (f *importFixture) writeFile(t *testing.T, name string, content string) string {
	t.Helper()

	filePath := "temp-imports/" + name
	require.NoError(t, afero.WriteFile(f.fs, filePath, []byte(content), 0o644))
	return filePath
}

func (f *importFixture) assertDeleted(t *testing.T, filePath string) {
	t.Helper()

	exists, err := afero.Exists(f.fs, filePath)
	require.NoError(t, err)
	assert.False(t, exists, "arquivo temporário deveria ter sido removido")
}

func TestImportSites_ValidRows(t *testing.T) {
	f := newImportFixture(t)
	store := newMemorySites()
	f.sites.EXPECT().UpsertSite(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(store.upsert).Times(3)

	filePath := f.writeFile(t, "sites.csv", "Site Name,Admin Fee\nexample.com,25.50\nblog.org,10\nhttps://news.net/path,7.125\n")

	result, err := f.service.ImportSites(context.Background(), filePath)
	require.NoError(t, err)

	assert.Equal(t, 3, result.ImportedCount)
	assert.Empty(t, result.Errors)
	assert.Equal(t, []string{"example.com", "blog.org", "https://news.net/path"}, store.calls)

	assert.Equal(t, "https://example.com", store.byName["example.com"].URL)
	assert.Equal(t, "https://news.net/path", store.byName["https://news.net/path"].URL)
	assert.True(t, decimal.RequireFromString("25.50").Equal(store.byName["example.com"].AdminFee))
	assert.True(t, decimal.RequireFromString("7.13").Equal(store.byName["https://news.net/path"].AdminFee))
	assert.True(t, store.byName["blog.org"].IsActive)

	f.assertDeleted(t, filePath)
}

func TestImportSites_RowValidation(t *testing.T) {
	f := newImportFixture(t)
	store := newMemorySites()
	f.sites.EXPECT().UpsertSite(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(store.upsert).Times(1)

	content := strings.Join([]string{
		"Site Name,Admin Fee",
		",15",
		"abc.com,abc",
		"nofee.com,",
		",",
		"",
		"  good.com  , 3",
	}, "\n")
	filePath := f.writeFile(t, "sites.csv", content)

	result, err := f.service.ImportSites(context.Background(), filePath)
	require.NoError(t, err)

	assert.Equal(t, 1, result.ImportedCount)
	assert.Equal(t, []string{
		"Row 2: Site name is required",
		"Row 3: Admin fee must be a number",
		"Row 4: Admin fee is required",
	}, result.Errors)
	assert.Equal(t, []string{"good.com"}, store.calls)
}

func TestImportSites_XLSNumbersRowsLikeTheSheet(t *testing.T) {
	content, err := os.ReadFile("../../../infrastructure/spreadsheet/testdata/sites.xls")
	require.NoError(t, err)

	f := newImportFixture(t)
	store := newMemorySites()
	f.sites.EXPECT().UpsertSite(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(store.upsert).Times(2)

	filePath := f.writeFile(t, "sites.xls", string(content))

	result, err := f.service.ImportSites(context.Background(), filePath)
	require.NoError(t, err)

	assert.Equal(t, 2, result.ImportedCount)
	assert.Equal(t, []string{"Row 5: Admin fee is required"}, result.Errors)
	assert.Equal(t, []string{"example.com", "blog.org"}, store.calls)
	assert.True(t, decimal.RequireFromString("25.50").Equal(store.byName["example.com"].AdminFee))

	f.assertDeleted(t, filePath)
}

func TestImportSites_IdempotentByName(t *testing.T) {
	f := newImportFixture(t)
	store := newMemorySites()
	f.sites.EXPECT().UpsertSite(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(store.upsert).Times(4)

	content := "Name,Fee\nexample.com,25\nother.com,30\n"

	for i := 0; i < 2; i++ {
		filePath := f.writeFile(t, "sites.csv", content)

		result, err := f.service.ImportSites(context.Background(), filePath)
		require.NoError(t, err)
		assert.Equal(t, 2, result.ImportedCount)
	}

	assert.Len(t, store.byName, 2)
	assert.True(t, decimal.NewFromInt(25).Equal(store.byName["example.com"].AdminFee))
}

func TestImportSites_UpsertFailureKeepsGoing(t *testing.T) {
	f := newImportFixture(t)
	store := newMemorySites()

	tooLong := &pq.Error{Code: "22001", Message: "value too long for type character varying(255)"}
	gomock.InOrder(
		f.sites.EXPECT().UpsertSite(gomock.Any(), "first.com", gomock.Any()).DoAndReturn(store.upsert),
		f.sites.EXPECT().UpsertSite(gomock.Any(), "second.com", gomock.Any()).Return(nil, errors.Join(errors.New("failed to upsert site"), tooLong)),
		f.sites.EXPECT().UpsertSite(gomock.Any(), "fourth.com", gomock.Any()).DoAndReturn(store.upsert),
	)

	filePath := f.writeFile(t, "sites.csv", "Name,Fee\nfirst.com,1\nsecond.com,2\n,3\nfourth.com,4\n")

	result, err := f.service.ImportSites(context.Background(), filePath)
	require.NoError(t, err)

	assert.Equal(t, 2, result.ImportedCount)
	require.Len(t, result.Errors, 2)
	assert.True(t, strings.HasPrefix(result.Errors[0], "Row 3: Failed to import - "))
	assert.Equal(t, "Row 4: Site name is required", result.Errors[1])
}

func TestImportSites_CommitFailure(t *testing.T) {
	f := newImportFixture(t)
	f.tx.commitErr = errors.New("commit transaction: connection lost")
	f.sites.EXPECT().UpsertSite(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(newMemorySites().upsert).Times(2)

	filePath := f.writeFile(t, "sites.csv", "Name,Fee\na.com,1\nb.com,2\n")

	result, err := f.service.ImportSites(context.Background(), filePath)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrTransaction)
	f.assertDeleted(t, filePath)
}

func TestImportSites_AbortedTransaction(t *testing.T) {
	f := newImportFixture(t)
	f.sites.EXPECT().UpsertSite(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, repository.ErrTransactionAborted)

	filePath := f.writeFile(t, "sites.csv", "Name,Fee\na.com,1\nb.com,2\n")

	result, err := f.service.ImportSites(context.Background(), filePath)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrTransaction)
}

func TestImportSites_FileErrors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		expected error
	}{
		{name: "arquivo vazio", file: "empty.csv", content: "", expected: ErrFormat},
		{name: "cabeçalho em branco", file: "blank.csv", content: " , \nexample.com,1\n", expected: ErrFormat},
		{name: "xlsx corrompido", file: "broken.xlsx", content: "not a workbook", expected: ErrFormat},
		{name: "formato não suportado", file: "sites.txt", content: "Name,Fee\n", expected: ErrFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newImportFixture(t)
			filePath := f.writeFile(t, tt.file, tt.content)

			result, err := f.service.ImportSites(context.Background(), filePath)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.expected)
			f.assertDeleted(t, filePath)
		})
	}

	t.Run("arquivo inexistente", func(t *testing.T) {
		f := newImportFixture(t)

		result, err := f.service.ImportSites(context.Background(), "temp-imports/missing.csv")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrIO)
	})
}

func TestImportSites_HeaderOnly(t *testing.T) {
	f := newImportFixture(t)
	filePath := f.writeFile(t, "sites.csv", "Name,Fee\n")

	result, err := f.service.ImportSites(context.Background(), filePath)
	require.NoError(t, err)

	assert.Equal(t, 0, result.ImportedCount)
	assert.Empty(t, result.Errors)
	assert.Equal(t, "No sites were imported.", Summarize(result).Message)
}

func TestImportSites_UsesReaderWithBaseName(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newImportFixture(t)

	reader := spreadsheetmocks.NewMockReader(ctrl)
	reader.EXPECT().
		Read(gomock.Any(), "upload.xls", gomock.Any()).
		Return([][]string{{"Name", "Fee"}}, nil)
	f.service.reader = reader

	filePath := f.writeFile(t, "upload.xls", "binary")

	_, err := f.service.ImportSites(context.Background(), filePath)
	require.NoError(t, err)
}

func TestStageUpload(t *testing.T) {
	f := newImportFixture(t)

	stored, err := f.service.StageUpload(context.Background(), "Sites.xlsx", strings.NewReader("data"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stored, "temp-imports/"))
	assert.True(t, strings.HasSuffix(stored, ".xlsx"))

	_, err = f.service.StageUpload(context.Background(), "sites.pdf", strings.NewReader("data"))
	assert.ErrorIs(t, err, ErrFormat)
}
