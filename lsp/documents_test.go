package lsp

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/yomi/syntax"
)

func TestDocumentStoreOpen(t *testing.T) {
	store := NewDocumentStore(afero.NewMemMapFs())
	doc := store.Open("file:///src/app.ts", 1, "export const x = 1;")
	require.NotNil(t, doc)
	assert.Equal(t, "/src/app.ts", doc.Path)
	assert.Equal(t, int32(1), doc.Version)
	require.NotNil(t, doc.File)
	assert.Equal(t, syntax.KindSourceFile, doc.File.Kind)
	assert.Empty(t, doc.File.Diagnostics)
	assert.Same(t, doc, store.Get("file:///src/app.ts"))
}

func TestDocumentStoreUpdateReparses(t *testing.T) {
	store := NewDocumentStore(afero.NewMemMapFs())
	store.Open("file:///src/app.ts", 1, "let a = 1;")

	doc := store.Update("file:///src/app.ts", 2, "let a = ;")
	require.NotNil(t, doc)
	assert.Equal(t, int32(2), doc.Version)
	assert.NotEmpty(t, doc.File.Diagnostics, "the broken edit should produce diagnostics")

	doc = store.Update("file:///src/app.ts", 3, "let a = 2;")
	assert.Empty(t, doc.File.Diagnostics, "fixing the text should clear diagnostics")
}

func TestDocumentStoreUpdateUnknownURI(t *testing.T) {
	store := NewDocumentStore(afero.NewMemMapFs())
	doc := store.Update("file:///src/new.ts", 1, "const x = 1;")
	require.NotNil(t, doc)
	assert.Equal(t, "/src/new.ts", doc.Path)
	require.NotNil(t, doc.File)
}

func TestDocumentStoreReload(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/src/app.ts", []byte("const onDisk = true;"), 0o644))
	store := NewDocumentStore(fs)
	store.Open("file:///src/app.ts", 1, "const inEditor = true;")

	doc := store.Reload("file:///src/app.ts")
	require.NotNil(t, doc)
	assert.Equal(t, "const onDisk = true;", doc.Text)

	assert.Nil(t, store.Reload("file:///src/missing.ts"))
}

func TestDocumentStoreClose(t *testing.T) {
	store := NewDocumentStore(afero.NewMemMapFs())
	store.Open("file:///src/app.ts", 1, "let a = 1;")
	store.Close("file:///src/app.ts")
	assert.Nil(t, store.Get("file:///src/app.ts"))
}

func TestDocumentScriptKindFollowsPath(t *testing.T) {
	store := NewDocumentStore(afero.NewMemMapFs())
	doc := store.Open("file:///src/view.tsx", 1, "const v = <div />;")
	assert.Empty(t, doc.File.Diagnostics, "tsx documents parse JSX")
}

func TestURIToPath(t *testing.T) {
	assert.Equal(t, "/home/user/a.ts", uriToPath("file:///home/user/a.ts"))
	assert.Equal(t, "/src/a b.ts", uriToPath("file:///src/a%20b.ts"))
	assert.Equal(t, "untitled:Untitled-1", uriToPath("untitled:Untitled-1"))
}
