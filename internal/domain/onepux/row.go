package onepux

// Header is the column layout of the generic password manager CSV schema.
var Header = []string{"Title", "URL", "Username", "Password", "Notes", "OTPAuth"}

type Row struct {
	Title    string
	URL      string
	Username string
	Password string
	Notes    string
	OTPAuth  string
}

// Record returns the cells in Header order.
func (r Row) Record() []string {
	return []string{r.Title, r.URL, r.Username, r.Password, r.Notes, r.OTPAuth}
}

// Include reports whether an item produces a row.
func Include(it Item, includeArchived bool) bool {
	return includeArchived || !it.Archived()
}

func BuildRow(it Item) Row {
	return Row{
		Title:    it.Overview.Title,
		URL:      PrimaryURL(it.Overview),
		Username: ExtractUsername(it.Details.LoginFields),
		Password: ExtractPassword(it.Details.LoginFields),
		Notes:    BuildNotes(it),
		OTPAuth:  ExtractOTP(it.Details.Sections),
	}
}

// ItemRef locates an item by its position in the export traversal.
type ItemRef struct {
	Account int
	Vault   int
	Item    int
}

// Walk visits every item in source order: accounts, then their vaults, then
// their items.
func (e Export) Walk(fn func(ref ItemRef, account Account, vault Vault, item Item)) {
	for ai, account := range e.Accounts {
		for vi, vault := range account.Vaults {
			for ii, item := range vault.Items {
				fn(ItemRef{Account: ai, Vault: vi, Item: ii}, account, vault, item)
			}
		}
	}
}

// VaultCount returns the number of vaults across all accounts.
func (e Export) VaultCount() int {
	n := 0
	for _, account := range e.Accounts {
		n += len(account.Vaults)
	}
	return n
}

// ItemCount returns the number of items Walk visits.
func (e Export) ItemCount() int {
	n := 0
	for _, account := range e.Accounts {
		for _, vault := range account.Vaults {
			n += len(vault.Items)
		}
	}
	return n
}
