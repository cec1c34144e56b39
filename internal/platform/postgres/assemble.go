package postgres

import (
	"database/sql"

	"github.com/phrazzld/garden-api/internal/domain"
)

// ownerRow is one row of a gardens × users_gardens join. Username is NULL
// when a LEFT JOIN finds a garden with no owners.
type ownerRow struct {
	GardenID    int64
	Name        string
	Description sql.NullString
	Username    sql.NullString
}

// scanOwnerRows drains and closes rows.
func scanOwnerRows(rows *sql.Rows) ([]ownerRow, error) {
	defer func() { _ = rows.Close() }()

	var out []ownerRow
	for rows.Next() {
		var r ownerRow
		if err := rows.Scan(&r.GardenID, &r.Name, &r.Description, &r.Username); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// groupOwnerRows folds join rows into one OwnedGarden per garden id.
// Gardens appear in the order their first row appears and owners keep row
// order. Users is never nil. Rows for the same garden need not be adjacent.
func groupOwnerRows(rows []ownerRow) []domain.OwnedGarden {
	gardens := make([]domain.OwnedGarden, 0, len(rows))
	index := make(map[int64]int, len(rows))

	for _, r := range rows {
		i, ok := index[r.GardenID]
		if !ok {
			i = len(gardens)
			index[r.GardenID] = i
			gardens = append(gardens, domain.OwnedGarden{
				Garden: domain.Garden{
					ID:          r.GardenID,
					Name:        r.Name,
					Description: nullStringPtr(r.Description),
				},
				Users: []string{},
			})
		}
		if r.Username.Valid {
			gardens[i].Users = append(gardens[i].Users, r.Username.String)
		}
	}
	return gardens
}

func nullStringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
