package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/sarkariportal/backend/internal/types"
)

const postColumns = `id, slug, title, department, type, qualification, state, category,
	post_date, last_date, short_info, eligibility_details, raw_job_content,
	important_dates, vacancy_details, application_fee, age_limit,
	selection_process, physical_eligibility, links,
	featured, trending,
	apply_online_url, admit_card_url, result_url, answer_key_url,
	notification_url, official_website_url,
	important_dates_html, application_fee_html, age_limit_html,
	vacancy_details_html, physical_standard_html, physical_efficiency_html,
	selection_process_html, important_links_html,
	created_at, updated_at`

// CreatePost persists a new post and returns it in domain form.
func (s *Store) CreatePost(ctx context.Context, job types.Job) (*types.Job, error) {
	p := FromJob(job)
	args, err := postArgs(&p)
	if err != nil {
		return nil, err
	}

	err = s.pool.QueryRow(ctx,
		`INSERT INTO posts (slug, title, department, type, qualification, state, category,
		                    post_date, last_date, short_info, eligibility_details, raw_job_content,
		                    important_dates, vacancy_details, application_fee, age_limit,
		                    selection_process, physical_eligibility, links,
		                    featured, trending,
		                    apply_online_url, admit_card_url, result_url, answer_key_url,
		                    notification_url, official_website_url,
		                    important_dates_html, application_fee_html, age_limit_html,
		                    vacancy_details_html, physical_standard_html, physical_efficiency_html,
		                    selection_process_html, important_links_html)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
		         $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32,
		         $33, $34, $35)
		 RETURNING id, created_at, updated_at`,
		args...,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	created := ToJob(&p)
	return &created, nil
}

// GetPost retrieves a post by id. A missing id returns (nil, nil).
func (s *Store) GetPost(ctx context.Context, id int64) (*types.Job, error) {
	row := s.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM posts WHERE id = $1`, postColumns), id)

	p, err := scanPost(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	job := ToJob(p)
	return &job, nil
}

// ListPosts lists posts with optional type/qualification/state filters,
// newest first.
func (s *Store) ListPosts(ctx context.Context, opts ListOptions) ([]types.Job, error) {
	var conditions []string
	var args []any
	argNum := 1

	if opts.Type != "" {
		conditions = append(conditions, fmt.Sprintf("type = $%d", argNum))
		args = append(args, opts.Type)
		argNum++
	}
	if opts.Qualification != "" {
		conditions = append(conditions, fmt.Sprintf("qualification ILIKE $%d", argNum))
		args = append(args, "%"+opts.Qualification+"%")
		argNum++
	}
	if opts.State != "" {
		conditions = append(conditions, fmt.Sprintf("state = $%d", argNum))
		args = append(args, opts.State)
		argNum++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = 100
	}
	if limit > 500 {
		limit = 500
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit, offset)

	query := fmt.Sprintf(
		`SELECT %s FROM posts %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		postColumns, whereClause, argNum, argNum+1,
	)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var jobs []types.Job
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		jobs = append(jobs, ToJob(p))
	}
	return jobs, nil
}

// UpdatePost replaces a post by id and returns the stored result.
// A missing id returns (nil, nil).
func (s *Store) UpdatePost(ctx context.Context, id int64, job types.Job) (*types.Job, error) {
	p := FromJob(job)
	p.ID = id
	args, err := postArgs(&p)
	if err != nil {
		return nil, err
	}
	args = append(args, id)

	err = s.pool.QueryRow(ctx,
		`UPDATE posts SET
		     slug = $1, title = $2, department = $3, type = $4, qualification = $5,
		     state = $6, category = $7, post_date = $8, last_date = $9, short_info = $10,
		     eligibility_details = $11, raw_job_content = $12,
		     important_dates = $13, vacancy_details = $14, application_fee = $15,
		     age_limit = $16, selection_process = $17, physical_eligibility = $18, links = $19,
		     featured = $20, trending = $21,
		     apply_online_url = $22, admit_card_url = $23, result_url = $24,
		     answer_key_url = $25, notification_url = $26, official_website_url = $27,
		     important_dates_html = $28, application_fee_html = $29, age_limit_html = $30,
		     vacancy_details_html = $31, physical_standard_html = $32,
		     physical_efficiency_html = $33, selection_process_html = $34,
		     important_links_html = $35,
		     updated_at = NOW()
		 WHERE id = $36
		 RETURNING created_at, updated_at`,
		args...,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	updated := ToJob(&p)
	return &updated, nil
}

// DeletePost removes a post by id and reports whether a row existed.
func (s *Store) DeletePost(ctx context.Context, id int64) (bool, error) {
	result, err := s.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete post: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// GetPostTitles resolves ids to titles in one query, for joining analytics
// counters against posts.
func (s *Store) GetPostTitles(ctx context.Context, ids []int64) (map[int64]string, error) {
	if len(ids) == 0 {
		return map[int64]string{}, nil
	}

	rows, err := s.pool.Query(ctx, `SELECT id, title FROM posts WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get post titles: %w", err)
	}
	defer rows.Close()

	titles := make(map[int64]string, len(ids))
	for rows.Next() {
		var id int64
		var title string
		if err := rows.Scan(&id, &title); err != nil {
			return nil, fmt.Errorf("failed to scan post title: %w", err)
		}
		titles[id] = title
	}
	return titles, nil
}

// postArgs builds the 35 insert/update parameters for a post row.
func postArgs(p *Post) ([]any, error) {
	jsonbCols := []struct {
		name  string
		value any
	}{
		{"important_dates", p.ImportantDates},
		{"vacancy_details", p.VacancyDetails},
		{"application_fee", p.ApplicationFee},
		{"age_limit", p.AgeLimit},
		{"selection_process", p.SelectionProcess},
		{"physical_eligibility", p.PhysicalEligibility},
		{"links", p.Links},
	}

	marshaled := make([][]byte, len(jsonbCols))
	for i, col := range jsonbCols {
		data, err := json.Marshal(col.value)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s: %w", col.name, err)
		}
		marshaled[i] = data
	}

	return []any{
		p.Slug, p.Title, p.Department, p.Type, p.Qualification, p.State, p.Category,
		p.PostDate, p.LastDate, p.ShortInfo, p.EligibilityDetails, p.RawJobContent,
		marshaled[0], marshaled[1], marshaled[2], marshaled[3], marshaled[4], marshaled[5], marshaled[6],
		p.Featured, p.Trending,
		p.ApplyOnlineURL, p.AdmitCardURL, p.ResultURL, p.AnswerKeyURL,
		p.NotificationURL, p.OfficialWebsiteURL,
		p.ImportantDatesHTML, p.ApplicationFeeHTML, p.AgeLimitHTML,
		p.VacancyDetailsHTML, p.PhysicalStandardHTML, p.PhysicalEfficiencyHTML,
		p.SelectionProcessHTML, p.ImportantLinksHTML,
	}, nil
}

func scanPost(row interface{ Scan(dest ...any) error }) (*Post, error) {
	var p Post
	var datesJSON, vacanciesJSON, feesJSON, agesJSON, stepsJSON, physJSON, linksJSON []byte

	err := row.Scan(
		&p.ID, &p.Slug, &p.Title, &p.Department, &p.Type, &p.Qualification, &p.State, &p.Category,
		&p.PostDate, &p.LastDate, &p.ShortInfo, &p.EligibilityDetails, &p.RawJobContent,
		&datesJSON, &vacanciesJSON, &feesJSON, &agesJSON, &stepsJSON, &physJSON, &linksJSON,
		&p.Featured, &p.Trending,
		&p.ApplyOnlineURL, &p.AdmitCardURL, &p.ResultURL, &p.AnswerKeyURL,
		&p.NotificationURL, &p.OfficialWebsiteURL,
		&p.ImportantDatesHTML, &p.ApplicationFeeHTML, &p.AgeLimitHTML,
		&p.VacancyDetailsHTML, &p.PhysicalStandardHTML, &p.PhysicalEfficiencyHTML,
		&p.SelectionProcessHTML, &p.ImportantLinksHTML,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// NULL JSONB columns leave the slices nil; ToJob maps those to empty.
	if datesJSON != nil {
		_ = json.Unmarshal(datesJSON, &p.ImportantDates)
	}
	if vacanciesJSON != nil {
		_ = json.Unmarshal(vacanciesJSON, &p.VacancyDetails)
	}
	if feesJSON != nil {
		_ = json.Unmarshal(feesJSON, &p.ApplicationFee)
	}
	if agesJSON != nil {
		_ = json.Unmarshal(agesJSON, &p.AgeLimit)
	}
	if stepsJSON != nil {
		_ = json.Unmarshal(stepsJSON, &p.SelectionProcess)
	}
	if physJSON != nil {
		_ = json.Unmarshal(physJSON, &p.PhysicalEligibility)
	}
	if linksJSON != nil {
		_ = json.Unmarshal(linksJSON, &p.Links)
	}

	return &p, nil
}
