package vault

// Stats summarizes the database for the settings screen.
type Stats struct {
	Entries       int
	Attachments   int
	Unlinked      int
	UnlinkedBytes int64
	Pending       int // attachments staged for removal
}

// Stats computes the current summary.
func (v *Vault) Stats() (Stats, error) {
	var s Stats
	err := v.db.QueryRow(`
		SELECT
			(SELECT COUNT(*) FROM entries),
			(SELECT COUNT(*) FROM attachments),
			(SELECT COUNT(*) FROM attachments a
			 WHERE NOT EXISTS (SELECT 1 FROM entry_attachments ea WHERE ea.attachment_id = a.id)),
			(SELECT COALESCE(SUM(a.size), 0) FROM attachments a
			 WHERE NOT EXISTS (SELECT 1 FROM entry_attachments ea WHERE ea.attachment_id = a.id))
	`).Scan(&s.Entries, &s.Attachments, &s.Unlinked, &s.UnlinkedBytes)
	if err != nil {
		return Stats{}, err
	}
	s.Pending = len(v.Pending())
	return s, nil
}
