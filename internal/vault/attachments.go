package vault

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"time"
)

// Attachment is a binary in the pool.
type Attachment struct {
	ID        int64
	Hash      string // hex SHA-256 of the content
	Size      int64
	Links     int // number of entry links
	CreatedAt time.Time
}

// Linked reports whether at least one entry references the attachment.
func (a Attachment) Linked() bool {
	return a.Links > 0
}

// AddAttachment adds data to the pool, reusing an existing binary with the
// same content.
func (v *Vault) AddAttachment(data []byte) (Attachment, error) {
	if data == nil {
		data = []byte{}
	}
	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])

	_, err := v.db.Exec(`
		INSERT INTO attachments (sha256, size, data, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(sha256) DO NOTHING
	`, hash, len(data), data, time.Now().Unix())
	if err != nil {
		return Attachment{}, err
	}

	return v.attachmentBy(`a.sha256 = ?`, hash)
}

// Attachment returns the attachment with the given ID.
func (v *Vault) Attachment(id int64) (Attachment, error) {
	return v.attachmentBy(`a.id = ?`, id)
}

// LinkAttachment attaches a pooled binary to an entry under name, replacing
// whatever that entry had under the same name.
func (v *Vault) LinkAttachment(entryID, name string, attachmentID int64) error {
	if _, err := v.Entry(entryID); err != nil {
		return err
	}
	if _, err := v.Attachment(attachmentID); err != nil {
		return err
	}

	_, err := v.db.Exec(`
		INSERT INTO entry_attachments (entry_id, name, attachment_id)
		VALUES (?, ?, ?)
		ON CONFLICT(entry_id, name) DO UPDATE SET attachment_id = excluded.attachment_id
	`, entryID, name, attachmentID)
	return err
}

// UnlinkAttachment removes the named attachment link from an entry.
// The binary stays in the pool.
func (v *Vault) UnlinkAttachment(entryID, name string) error {
	res, err := v.db.Exec(`
		DELETE FROM entry_attachments WHERE entry_id = ? AND name = ?
	`, entryID, name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Attachments returns the whole pool ordered by ID.
func (v *Vault) Attachments() ([]Attachment, error) {
	return v.attachmentsWhere(`1 = 1`)
}

// UnlinkedAttachments returns the attachments no entry links to.
func (v *Vault) UnlinkedAttachments() ([]Attachment, error) {
	return v.attachmentsWhere(`NOT EXISTS (SELECT 1 FROM entry_attachments x WHERE x.attachment_id = a.id)`)
}

const attachmentSelect = `
	SELECT a.id, a.sha256, a.size, a.created_at,
	       (SELECT COUNT(*) FROM entry_attachments ea WHERE ea.attachment_id = a.id)
	FROM attachments a
`

func (v *Vault) attachmentBy(where string, arg any) (Attachment, error) {
	row := v.db.QueryRow(attachmentSelect+` WHERE `+where, arg)
	a, err := scanAttachment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Attachment{}, ErrNotFound
	}
	return a, err
}

func (v *Vault) attachmentsWhere(where string) ([]Attachment, error) {
	rows, err := v.db.Query(attachmentSelect + ` WHERE ` + where + ` ORDER BY a.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Attachment
	for rows.Next() {
		a, err := scanAttachment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanAttachment(s scanner) (Attachment, error) {
	var a Attachment
	var created int64
	if err := s.Scan(&a.ID, &a.Hash, &a.Size, &created, &a.Links); err != nil {
		return Attachment{}, err
	}
	a.CreatedAt = time.Unix(created, 0)
	return a, nil
}
