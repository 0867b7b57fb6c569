package services

import (
	"context"
	"errors"
	"testing"

	"graphbench/application/ports"
	"graphbench/domain/core/validators"
	pkgerrors "graphbench/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubArchive implements ports.DocumentArchive in memory
type stubArchive struct {
	saved   map[string][]byte
	saveErr error
}

func newStubArchive() *stubArchive {
	return &stubArchive{saved: make(map[string][]byte)}
}

func (a *stubArchive) Save(document []byte) (string, error) {
	if a.saveErr != nil {
		return "", a.saveErr
	}
	name := "constraints-20260101-120000.json"
	a.saved[name] = document
	return name, nil
}

func (a *stubArchive) List() ([]string, error) {
	names := make([]string, 0, len(a.saved))
	for name := range a.saved {
		names = append(names, name)
	}
	return names, nil
}

func (a *stubArchive) Get(name string) ([]byte, error) {
	document, ok := a.saved[name]
	if !ok {
		return nil, pkgerrors.NewNotFoundError("constraint document")
	}
	return document, nil
}

func newTestConstraintService(client *stubGraphClient) (*ConstraintService, *GraphSession, *stubArchive) {
	session := newTestSession(client)
	archive := newStubArchive()
	service := NewConstraintService(session, validators.NewSymbolValidator(), archive, zap.NewNop())
	return service, session, archive
}

func TestConstraintService_SetText_DerivesLines(t *testing.T) {
	service, _, _ := newTestConstraintService(&stubGraphClient{})

	service.SetText("  knows AND owns  \n\nNOT likes\n")

	assert.Equal(t, "  knows AND owns  \n\nNOT likes\n", service.Text())
	assert.Equal(t, []string{"knows AND owns", "NOT likes"}, service.Lines())
}

func TestConstraintService_UnknownSymbols_AgainstSessionVocabulary(t *testing.T) {
	client := &stubGraphClient{
		fetchSchema: func(ctx context.Context, id string) (ports.Schema, error) {
			return ports.Schema{RelTypes: []string{"knows"}}, nil
		},
	}
	service, session, _ := newTestConstraintService(client)
	require.NoError(t, session.SelectInstance(context.Background(), "g1"))

	service.SetText("knows AND owns\nC1 OR likes")

	assert.Equal(t, []string{"likes", "owns"}, service.UnknownSymbols())
}

func TestConstraintService_UnknownSymbols_EmptyVocabularyFlagsEverything(t *testing.T) {
	service, _, _ := newTestConstraintService(&stubGraphClient{})

	service.SetText("knows AND owns")

	assert.Equal(t, []string{"knows", "owns"}, service.UnknownSymbols())
}

func TestConstraintService_Export(t *testing.T) {
	service, _, _ := newTestConstraintService(&stubGraphClient{})
	service.SetText("knows\nowns")

	document, err := service.Export()

	require.NoError(t, err)
	assert.JSONEq(t, `{"constraints":["knows","owns"]}`, string(document))
}

func TestConstraintService_Import_ReplacesText(t *testing.T) {
	service, _, _ := newTestConstraintService(&stubGraphClient{})
	service.SetText("old")

	err := service.Import([]byte(`{"constraints":["knows","owns"]}`))

	require.NoError(t, err)
	assert.Equal(t, "knows\nowns", service.Text())
	assert.Equal(t, []string{"knows", "owns"}, service.Lines())
}

func TestConstraintService_Import_LegacyPayloadShape(t *testing.T) {
	service, _, _ := newTestConstraintService(&stubGraphClient{})

	err := service.Import([]byte(`{"payload":{"constraints":["knows"]}}`))

	require.NoError(t, err)
	assert.Equal(t, []string{"knows"}, service.Lines())
}

func TestConstraintService_Import_MalformedLeavesStateUntouched(t *testing.T) {
	service, _, _ := newTestConstraintService(&stubGraphClient{})
	service.SetText("knows")

	err := service.Import([]byte(`{"foo":1}`))

	assert.True(t, pkgerrors.IsMalformedDocument(err))
	assert.Equal(t, "knows", service.Text())
	assert.Equal(t, []string{"knows"}, service.Lines())
}

func TestConstraintService_SaveToArchive(t *testing.T) {
	service, _, archive := newTestConstraintService(&stubGraphClient{})
	service.SetText("knows")

	name, err := service.SaveToArchive()

	require.NoError(t, err)
	assert.Equal(t, "constraints-20260101-120000.json", name)
	assert.JSONEq(t, `{"constraints":["knows"]}`, string(archive.saved[name]))
}

func TestConstraintService_SaveToArchive_SaveFailure(t *testing.T) {
	service, _, archive := newTestConstraintService(&stubGraphClient{})
	archive.saveErr = errors.New("disk full")

	_, err := service.SaveToArchive()

	assert.Error(t, err)
}

func TestConstraintService_ArchivedDocumentRoundTrip(t *testing.T) {
	service, _, _ := newTestConstraintService(&stubGraphClient{})
	service.SetText("knows")

	name, err := service.SaveToArchive()
	require.NoError(t, err)

	names, err := service.ArchivedDocuments()
	require.NoError(t, err)
	assert.Equal(t, []string{name}, names)

	document, err := service.ArchivedDocument(name)
	require.NoError(t, err)
	assert.JSONEq(t, `{"constraints":["knows"]}`, string(document))
}
