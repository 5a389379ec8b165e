package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/zeptools/findoc-core/billing"
	"github.com/zeptools/findoc-core/db/sqldb"
)

const profileQuery = `
SELECT name, address, postal_code, city, canton, phone, email, logo_url,
       bank_account, bank_name, swift_bic, street_name, building_number
FROM company_profile
ORDER BY id
LIMIT 1`

// Profile loads the issuing company. A missing row is not an error; the
// renderer degrades to blank issuer fields.
func (s *Store) Profile(ctx context.Context) (*billing.CompanyProfile, error) {
	profile, err := sqldb.QueryItem[billing.CompanyProfile, *billing.CompanyProfile](ctx, s.DB, profileQuery)
	if err != nil {
		if errors.Is(err, sqldb.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("store: query company profile: %w", err)
	}
	return profile, nil
}
