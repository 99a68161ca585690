package dao

import "encoding/json"

// RawTable is the persisted table exactly as read from disk: user id string
// to an undecoded schedule value. Entries stay raw until normalization so a
// malformed record for one user never poisons the others.
type RawTable map[string]json.RawMessage
