//go:generate mockery --name SupplementService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"time"

	"supplement_keep/internal/middleware"
	"supplement_keep/internal/model"
	"supplement_keep/internal/repository"
	"supplement_keep/internal/timezone"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 一覧のグルーピング順。クライアントはこの順で表示します。
var listStatusOrder = []model.SupplementStatus{
	model.StatusActive,
	model.StatusCompleted,
	model.StatusCancelled,
}

type SupplementService interface {
	Create(ctx context.Context, userID uuid.UUID, req *model.PostSupplementRequest) (*model.Supplement, error)
	List(ctx context.Context, userID uuid.UUID) (*model.SupplementsListResponse, error)
	GetToday(ctx context.Context, userID uuid.UUID, date, tz string, now time.Time) (*model.TodayResponse, error)
	GetDetail(ctx context.Context, userID, supplementID uuid.UUID, tz string, now time.Time) (*model.SupplementDetailResponse, error)
	Delete(ctx context.Context, userID, supplementID uuid.UUID) error
	GetStats(ctx context.Context, userID uuid.UUID, tz string, now time.Time) (*model.UserStatsResponse, error)
}

type supplementService struct {
	db             *gorm.DB
	supplementRepo repository.SupplementRepository
	scheduleRepo   repository.ScheduleRepository
	adherenceRepo  repository.AdherenceRepository
	recentLimit    int
}

func NewSupplementService(
	db *gorm.DB,
	supplementRepo repository.SupplementRepository,
	scheduleRepo repository.ScheduleRepository,
	adherenceRepo repository.AdherenceRepository,
	recentLimit int,
) SupplementService {
	if recentLimit <= 0 {
		recentLimit = 10
	}
	return &supplementService{
		db:             db,
		supplementRepo: supplementRepo,
		scheduleRepo:   scheduleRepo,
		adherenceRepo:  adherenceRepo,
		recentLimit:    recentLimit,
	}
}

// Create はサプリメントとそのスケジュールをまとめて登録します。
func (s *supplementService) Create(ctx context.Context, userID uuid.UUID, req *model.PostSupplementRequest) (*model.Supplement, error) {
	logger := middleware.GetLogger(ctx)

	if !timezone.IsValidCivilDate(req.StartDate) {
		return nil, model.NewAppError("INVALID_INPUT", "開始日の形式が正しくありません。", "start_date", model.ErrInvalidInput)
	}
	if req.EndDate != nil {
		if !timezone.IsValidCivilDate(*req.EndDate) {
			return nil, model.NewAppError("INVALID_INPUT", "終了日の形式が正しくありません。", "end_date", model.ErrInvalidInput)
		}
		// 暦日文字列は辞書順比較がそのまま日付比較になる
		if *req.EndDate <= req.StartDate {
			return nil, model.NewAppError("INVALID_INPUT", "終了日は開始日より後の日付を指定してください。", "end_date", model.ErrInvalidInput)
		}
		// 在庫管理は無期限サプリメントのみ対象
		if req.InventoryTotal != nil || req.LowInventoryThreshold != nil {
			return nil, model.NewAppError("INVALID_INPUT", "終了日のあるサプリメントには在庫を設定できません。", "inventory_total", model.ErrInvalidInput)
		}
	}
	for _, t := range req.TimesOfDay {
		if !timezone.IsValidTimeOfDay(t) {
			return nil, model.NewAppError("INVALID_INPUT", "摂取時刻はHH:MM形式で指定してください。", "times_of_day", model.ErrInvalidInput)
		}
	}

	supplement := &model.Supplement{
		SupplementID:          uuid.New(),
		UserID:                userID,
		Name:                  req.Name,
		CapsulesPerTake:       req.CapsulesPerTake,
		Recommendation:        req.Recommendation,
		SourceName:            req.SourceName,
		SourceURL:             req.SourceURL,
		StartDate:             req.StartDate,
		EndDate:               req.EndDate,
		Status:                model.StatusActive,
		InventoryTotal:        req.InventoryTotal,
		LowInventoryThreshold: req.LowInventoryThreshold,
	}
	entries := make([]*model.ScheduleEntry, 0, len(req.TimesOfDay))
	base := time.Now().UTC()
	for i, t := range req.TimesOfDay {
		entries = append(entries, &model.ScheduleEntry{
			ScheduleID:   uuid.New(),
			SupplementID: supplement.SupplementID,
			TimeOfDay:    t,
			// 作成順をミリ秒刻みで刻んでおく（並びの安定化）
			CreatedAt: base.Add(time.Duration(i) * time.Millisecond),
		})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.supplementRepo.Create(ctx, tx, supplement); err != nil {
			return err
		}
		return s.scheduleRepo.CreateAll(ctx, tx, entries)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Supplement created",
		"supplement_id", supplement.SupplementID.String(),
		"user_id", userID.String(),
		"schedules", len(entries),
	)
	for _, e := range entries {
		supplement.Schedules = append(supplement.Schedules, *e)
	}
	return supplement, nil
}

// List はユーザーのサプリメントをステータス別にグルーピングして返します。
// 各グループ内は作成日時の降順、論理削除済みは含まれません。
func (s *supplementService) List(ctx context.Context, userID uuid.UUID) (*model.SupplementsListResponse, error) {
	supplements, err := s.supplementRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}

	grouped := make(map[model.SupplementStatus][]*model.SupplementsListItem)
	for _, sup := range supplements {
		grouped[sup.Status] = append(grouped[sup.Status], &model.SupplementsListItem{
			ID:         sup.SupplementID,
			Name:       sup.Name,
			StartDate:  sup.StartDate,
			EndDate:    sup.EndDate,
			CreatedAt:  sup.CreatedAt,
			SourceName: sup.SourceName,
			SourceURL:  sup.SourceURL,
		})
	}

	resp := &model.SupplementsListResponse{Supplements: []*model.SupplementsListGroup{}}
	for _, status := range listStatusOrder {
		items, ok := grouped[status]
		if !ok {
			continue
		}
		resp.Supplements = append(resp.Supplements, &model.SupplementsListGroup{
			Status: status,
			Items:  items,
		})
	}
	return resp, nil
}

// GetToday は指定日（省略時はユーザーのタイムゾーンでの今日）の摂取予定を返します。
func (s *supplementService) GetToday(ctx context.Context, userID uuid.UUID, date, tz string, now time.Time) (*model.TodayResponse, error) {
	resolvedTZ := tz
	if resolvedTZ == "" {
		resolvedTZ = "UTC"
	}
	if date == "" {
		date = timezone.Today(now, resolvedTZ)
	} else if !timezone.IsValidCivilDate(date) {
		return nil, model.NewAppError("INVALID_INPUT", "日付の形式が正しくありません。", "date", model.ErrInvalidInput)
	}

	supplements, err := s.supplementRepo.FindActiveOn(ctx, s.db, userID, date)
	if err != nil {
		return nil, err
	}

	resp := &model.TodayResponse{
		Date:        date,
		Timezone:    resolvedTZ,
		Supplements: []*model.TodaySupplement{},
	}
	if len(supplements) == 0 {
		return resp, nil
	}

	ids := make([]uuid.UUID, 0, len(supplements))
	for _, sup := range supplements {
		ids = append(ids, sup.SupplementID)
	}
	records, err := s.adherenceRepo.FindForDate(ctx, s.db, userID, date, ids)
	if err != nil {
		return nil, err
	}
	takenSchedules := make(map[uuid.UUID]struct{}, len(records))
	takenBySupplement := make(map[uuid.UUID]int, len(supplements))
	for _, r := range records {
		takenSchedules[r.ScheduleID] = struct{}{}
		takenBySupplement[r.SupplementID]++
	}

	for _, sup := range supplements {
		item := &model.TodaySupplement{
			ID:              sup.SupplementID,
			Name:            sup.Name,
			CapsulesPerTake: sup.CapsulesPerTake,
			Recommendation:  derefString(sup.Recommendation),
			Schedules:       []*model.TodaySchedule{},
			// 今日の画面の進捗は累計ではなく「今日摂取した数 ÷ 今日の予定数」
			AdherenceProgress: DayProgress(takenBySupplement[sup.SupplementID], len(sup.Schedules)),
		}
		for _, sched := range sup.Schedules {
			_, taken := takenSchedules[sched.ScheduleID]
			item.Schedules = append(item.Schedules, &model.TodaySchedule{
				ID:              sched.ScheduleID,
				TimeOfDay:       sched.TimeOfDay,
				AdherenceStatus: taken,
			})
		}
		resp.Supplements = append(resp.Supplements, item)
	}
	return resp, nil
}

// GetDetail はサプリメント詳細（累計進捗・日別バケット・直近の記録）を返します。
func (s *supplementService) GetDetail(ctx context.Context, userID, supplementID uuid.UUID, tz string, now time.Time) (*model.SupplementDetailResponse, error) {
	supplement, err := s.supplementRepo.FindByID(ctx, s.db, userID, supplementID)
	if err != nil {
		return nil, err
	}
	schedules, err := s.scheduleRepo.FindBySupplement(ctx, s.db, supplementID)
	if err != nil {
		return nil, err
	}
	takenDates, err := s.adherenceRepo.FindTakenDates(ctx, s.db, userID, supplementID)
	if err != nil {
		return nil, err
	}
	takenCount, err := s.adherenceRepo.CountTakenDates(ctx, s.db, userID, supplementID)
	if err != nil {
		return nil, err
	}
	recent, err := s.adherenceRepo.FindRecent(ctx, s.db, userID, supplementID, s.recentLimit)
	if err != nil {
		return nil, err
	}

	resolvedTZ := tz
	if resolvedTZ == "" {
		resolvedTZ = "UTC"
	}
	today := timezone.Today(now, resolvedTZ)
	daysTracked := DaysTracked(supplement.StartDate, supplement.End(), today)

	timesOfDay := make([]string, 0, len(schedules))
	timeBySchedule := make(map[uuid.UUID]string, len(schedules))
	for _, sched := range schedules {
		timesOfDay = append(timesOfDay, sched.TimeOfDay)
		timeBySchedule[sched.ScheduleID] = sched.TimeOfDay
	}

	detail := &model.SupplementDetail{
		ID:                    supplement.SupplementID,
		Name:                  supplement.Name,
		CapsulesPerTake:       supplement.CapsulesPerTake,
		Recommendation:        derefString(supplement.Recommendation),
		SourceName:            derefString(supplement.SourceName),
		SourceURL:             derefString(supplement.SourceURL),
		StartDate:             supplement.StartDate,
		EndDate:               supplement.EndDate,
		Status:                supplement.Status,
		CreatedAt:             supplement.CreatedAt,
		InventoryTotal:        supplement.InventoryTotal,
		LowInventoryThreshold: supplement.LowInventoryThreshold,
		Schedules:             timesOfDay,
		TotalTakes:            int(takenCount),
		AdherenceProgress:     AdherenceProgress(int(takenCount), daysTracked, len(schedules)),
	}

	buckets := DayBuckets(supplement.StartDate, supplement.End(), today, takenDates)
	bucketPtrs := make([]*model.DayBucket, 0, len(buckets))
	for i := range buckets {
		bucketPtrs = append(bucketPtrs, &buckets[i])
	}

	recentItems := make([]*model.RecentAdherence, 0, len(recent))
	for _, r := range recent {
		recentItems = append(recentItems, &model.RecentAdherence{
			Date:      r.TakenAt,
			TimeOfDay: timeBySchedule[r.ScheduleID],
			MarkedAt:  r.MarkedAt,
		})
	}

	return &model.SupplementDetailResponse{
		Supplement:      detail,
		DayBuckets:      bucketPtrs,
		RecentAdherence: recentItems,
	}, nil
}

// Delete は論理削除します。摂取記録は履歴として残します。
func (s *supplementService) Delete(ctx context.Context, userID, supplementID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.supplementRepo.Delete(ctx, tx, userID, supplementID)
	})
	if err != nil {
		return err
	}
	logger.Info("Supplement deleted", "supplement_id", supplementID.String(), "user_id", userID.String())
	return nil
}

// GetStats はユーザー統計（登録数と連続摂取日数）を返します。
func (s *supplementService) GetStats(ctx context.Context, userID uuid.UUID, tz string, now time.Time) (*model.UserStatsResponse, error) {
	count, err := s.supplementRepo.CountByUser(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	dates, err := s.adherenceRepo.FindDistinctDatesByUser(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	resolvedTZ := tz
	if resolvedTZ == "" {
		resolvedTZ = "UTC"
	}
	today := timezone.Today(now, resolvedTZ)
	return &model.UserStatsResponse{
		SupplementsCount: count,
		DayStreak:        DayStreak(dates, today),
	}, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
