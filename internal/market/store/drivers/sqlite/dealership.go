package sqlite

import (
	"context"

	"github.com/kmrmotors/motodrive/internal/market/domain"
)

type dealershipRepo struct {
	db dbtx
}

func (r *dealershipRepo) Get(ctx context.Context) (domain.DealershipInfo, []domain.WorkingHour, error) {
	var info domain.DealershipInfo
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, address, phone, email, created_at, updated_at
		FROM dealership_info LIMIT 1`,
	).Scan(&info.ID, &info.Name, &info.Address, &info.Phone, &info.Email, &info.CreatedAt, &info.UpdatedAt)
	if err != nil {
		return domain.DealershipInfo{}, nil, mapNotFound(err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, dealership_id, day_of_week, open_time, close_time, is_open
		FROM working_hours
		WHERE dealership_id = ?
		ORDER BY CASE day_of_week
			WHEN 'MONDAY' THEN 1
			WHEN 'TUESDAY' THEN 2
			WHEN 'WEDNESDAY' THEN 3
			WHEN 'THURSDAY' THEN 4
			WHEN 'FRIDAY' THEN 5
			WHEN 'SATURDAY' THEN 6
			WHEN 'SUNDAY' THEN 7
		END`,
		info.ID,
	)
	if err != nil {
		return domain.DealershipInfo{}, nil, err
	}
	defer rows.Close()

	var hours []domain.WorkingHour
	for rows.Next() {
		var h domain.WorkingHour
		if err := rows.Scan(&h.ID, &h.DealershipID, &h.DayOfWeek, &h.OpenTime, &h.CloseTime, &h.IsOpen); err != nil {
			return domain.DealershipInfo{}, nil, err
		}
		hours = append(hours, h)
	}
	return info, hours, rows.Err()
}
