package cvbot

// ContactInfo holds the candidate's contact details. Contact data is
// never embedded; the contact intent is answered from these fields
// verbatim.
//
// JSON tags match the contacts data file.
type ContactInfo struct {
	Email string `json:"email_add"`
	Phone string `json:"phone_num"`
}

// Validate returns an error if required contact fields are missing.
func (c *ContactInfo) Validate() error {
	if c.Email == "" {
		return Errorf(EINVALID, "contact email required")
	}
	if c.Phone == "" {
		return Errorf(EINVALID, "contact phone required")
	}
	return nil
}
