package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tienn/cvbot"
	"github.com/tienn/cvbot/fs"
	"github.com/tienn/cvbot/secrets"
)

const factsJSON = `[
	{
		"id": "exp_acm_000001",
		"type": "experience",
		"role": "Data Engineer",
		"name": "Acme",
		"start_date": "2020-01",
		"end_date": "2021-06",
		"text": "Built streaming pipelines.",
		"skills": ["python", "kafka"],
		"context_str": "During my time as data engineer at Acme (2020-01 to 2021-06)"
	}
]`

const anchorsJSON = `{
	"skills": ["Do you know Python?"],
	"experience": ["Tell me about your work history."]
}`

const contactsJSON = `{"email_add": "jane@example.com", "phone_num": "+48 123 456 789"}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadFacts(t *testing.T) {
	t.Parallel()

	facts, err := fs.LoadFacts(writeFile(t, "cv_atomic_db.json", factsJSON))
	require.NoError(t, err)

	require.Len(t, facts, 1)
	assert.Equal(t, "exp_acm_000001", facts[0].ID)
	assert.Equal(t, cvbot.CategoryExperience, facts[0].Category)
	assert.Equal(t, "Acme", facts[0].Organization)
	assert.Equal(t, []string{"python", "kafka"}, facts[0].Skills)
}

func TestLoadFacts_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := fs.LoadFacts(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
}

func TestDecodeFacts_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		code string
	}{
		{"not json", "{not json", cvbot.EINVALID},
		{"empty corpus", "[]", cvbot.ECONFIG},
		{"invalid record", `[{"id": "x", "type": "experience"}]`, cvbot.EINVALID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := fs.DecodeFacts([]byte(tt.data))

			require.Error(t, err)
			assert.Equal(t, tt.code, cvbot.ErrorCode(err))
		})
	}
}

func TestLoadAnchors(t *testing.T) {
	t.Parallel()

	anchors, err := fs.LoadAnchors(writeFile(t, "anchors.json", anchorsJSON))
	require.NoError(t, err)

	assert.Equal(t, []string{"experience", "skills"}, anchors.Intents())
}

func TestDecodeAnchors_Empty(t *testing.T) {
	t.Parallel()

	_, err := fs.DecodeAnchors([]byte(`{}`))

	require.Error(t, err)
	assert.Equal(t, cvbot.ECONFIG, cvbot.ErrorCode(err))
}

func TestLoadContacts(t *testing.T) {
	t.Parallel()

	contacts, err := fs.LoadContacts(writeFile(t, "contacts.json", contactsJSON))
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", contacts.Email)
	assert.Equal(t, "+48 123 456 789", contacts.Phone)
}

func TestLoadEncrypted(t *testing.T) {
	t.Parallel()

	key, err := secrets.GenerateKey()
	require.NoError(t, err)
	vault, err := secrets.NewVault(key)
	require.NoError(t, err)

	dir := t.TempDir()
	seal := func(name, content string) string {
		t.Helper()
		src := filepath.Join(dir, name)
		dst := src + ".enc"
		require.NoError(t, os.WriteFile(src, []byte(content), 0600))
		require.NoError(t, vault.SealFile(src, dst))
		return dst
	}

	facts, err := fs.LoadEncryptedFacts(vault, seal("cv_atomic_db.json", factsJSON))
	require.NoError(t, err)
	require.Len(t, facts, 1)

	anchors, err := fs.LoadEncryptedAnchors(vault, seal("anchors.json", anchorsJSON))
	require.NoError(t, err)
	assert.Equal(t, []string{"experience", "skills"}, anchors.Intents())

	contacts, err := fs.LoadEncryptedContacts(vault, seal("contacts.json", contactsJSON))
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", contacts.Email)
}

func TestLoadEncryptedFacts_WrongKey(t *testing.T) {
	t.Parallel()

	keyA, err := secrets.GenerateKey()
	require.NoError(t, err)
	keyB, err := secrets.GenerateKey()
	require.NoError(t, err)

	vaultA, err := secrets.NewVault(keyA)
	require.NoError(t, err)
	vaultB, err := secrets.NewVault(keyB)
	require.NoError(t, err)

	dir := t.TempDir()
	src := filepath.Join(dir, "cv_atomic_db.json")
	dst := src + ".enc"
	require.NoError(t, os.WriteFile(src, []byte(factsJSON), 0600))
	require.NoError(t, vaultA.SealFile(src, dst))

	_, err = fs.LoadEncryptedFacts(vaultB, dst)

	require.Error(t, err)
	assert.Equal(t, cvbot.EINVALID, cvbot.ErrorCode(err))
}
