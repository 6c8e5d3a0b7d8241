// Package fs loads the CV data files — atomic facts, router anchors and
// contact details — from disk, in the clear or sealed at rest. Records
// are validated eagerly so a malformed file fails at load time, never
// mid-query.
package fs

import (
	"encoding/json"
	"os"

	"github.com/tienn/cvbot"
	"github.com/tienn/cvbot/secrets"
)

// LoadFacts reads and validates an atomic fact corpus from a JSON file.
func LoadFacts(path string) ([]*cvbot.AtomicFact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeFacts(data)
}

// LoadEncryptedFacts reads a sealed fact corpus.
func LoadEncryptedFacts(vault *secrets.Vault, path string) ([]*cvbot.AtomicFact, error) {
	data, err := vault.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeFacts(data)
}

// DecodeFacts parses and validates a fact corpus from JSON bytes.
func DecodeFacts(data []byte) ([]*cvbot.AtomicFact, error) {
	var facts []*cvbot.AtomicFact
	if err := json.Unmarshal(data, &facts); err != nil {
		return nil, cvbot.Errorf(cvbot.EINVALID, "fact corpus is not valid JSON: %v", err)
	}
	if len(facts) == 0 {
		return nil, cvbot.Errorf(cvbot.ECONFIG, "fact corpus is empty")
	}
	for _, fact := range facts {
		if err := fact.Validate(); err != nil {
			return nil, err
		}
	}
	return facts, nil
}

// LoadAnchors reads and validates a router anchor set from a JSON file.
func LoadAnchors(path string) (cvbot.AnchorSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeAnchors(data)
}

// LoadEncryptedAnchors reads a sealed anchor set.
func LoadEncryptedAnchors(vault *secrets.Vault, path string) (cvbot.AnchorSet, error) {
	data, err := vault.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeAnchors(data)
}

// DecodeAnchors parses and validates an anchor set from JSON bytes.
func DecodeAnchors(data []byte) (cvbot.AnchorSet, error) {
	var anchors cvbot.AnchorSet
	if err := json.Unmarshal(data, &anchors); err != nil {
		return nil, cvbot.Errorf(cvbot.EINVALID, "anchor set is not valid JSON: %v", err)
	}
	if err := anchors.Validate(); err != nil {
		return nil, err
	}
	return anchors, nil
}

// LoadContacts reads and validates contact details from a JSON file.
func LoadContacts(path string) (*cvbot.ContactInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeContacts(data)
}

// LoadEncryptedContacts reads sealed contact details.
func LoadEncryptedContacts(vault *secrets.Vault, path string) (*cvbot.ContactInfo, error) {
	data, err := vault.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeContacts(data)
}

// DecodeContacts parses and validates contact details from JSON bytes.
func DecodeContacts(data []byte) (*cvbot.ContactInfo, error) {
	var contacts cvbot.ContactInfo
	if err := json.Unmarshal(data, &contacts); err != nil {
		return nil, cvbot.Errorf(cvbot.EINVALID, "contacts file is not valid JSON: %v", err)
	}
	if err := contacts.Validate(); err != nil {
		return nil, err
	}
	return &contacts, nil
}
