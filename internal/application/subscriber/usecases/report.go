package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/tcworld/magadmin/internal/application/subscriber/dto"
	"github.com/tcworld/magadmin/internal/domain/subscriber"
	"github.com/tcworld/magadmin/internal/shared/errors"
	"github.com/tcworld/magadmin/internal/shared/logger"
	"github.com/tcworld/magadmin/internal/shared/mapper"
	"github.com/tcworld/magadmin/internal/shared/utils"
)

const sampleRowCount = 12

// ReportUseCase builds the postal label report in its three shapes: rows,
// a PDF label sheet, and the sheet mailed as an attachment.
type ReportUseCase struct {
	repo             subscriber.Repository
	renderer         LabelRenderer
	mailer           ReportMailer
	defaultCharLimit int
	fileName         string
	logger           logger.Interface
}

func NewReportUseCase(
	repo subscriber.Repository,
	renderer LabelRenderer,
	mailer ReportMailer,
	defaultCharLimit int,
	fileName string,
	logger logger.Interface,
) *ReportUseCase {
	if defaultCharLimit < 1 {
		defaultCharLimit = subscriber.DefaultCharLimit
	}
	return &ReportUseCase{
		repo:             repo,
		renderer:         renderer,
		mailer:           mailer,
		defaultCharLimit: defaultCharLimit,
		fileName:         fileName,
		logger:           logger,
	}
}

// FileName is the attachment name of the label sheet.
func (uc *ReportUseCase) FileName() string {
	return uc.fileName
}

func (uc *ReportUseCase) charLimit(requested *int) (int, error) {
	if requested == nil {
		return uc.defaultCharLimit, nil
	}
	if *requested < 1 {
		return 0, errors.FieldValidation("char_limit", "Ensure this value is greater than or equal to 1.")
	}
	return *requested, nil
}

func (uc *ReportUseCase) rows(ctx context.Context, limit int) ([]subscriber.ReportRow, error) {
	subscribers, err := uc.repo.ListForReport(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load subscribers for report", "error", err)
		return nil, err
	}
	return subscriber.BuildReport(subscribers, limit), nil
}

// Rows returns one row per subscriber not deleted, address wrapped to the limit.
func (uc *ReportUseCase) Rows(ctx context.Context, charLimit *int) ([]*dto.ReportRowDTO, error) {
	limit, err := uc.charLimit(charLimit)
	if err != nil {
		return nil, err
	}
	rows, err := uc.rows(ctx, limit)
	if err != nil {
		return nil, err
	}
	return mapper.MapSlice(rows, dto.ToReportRowDTO), nil
}

// PDF renders the label sheet for every subscriber not deleted.
func (uc *ReportUseCase) PDF(ctx context.Context, charLimit *int) ([]byte, error) {
	limit, err := uc.charLimit(charLimit)
	if err != nil {
		return nil, err
	}
	rows, err := uc.rows(ctx, limit)
	if err != nil {
		return nil, err
	}
	return uc.render(rows, limit)
}

// SamplePDF renders a sheet of placeholder labels for checking the layout.
func (uc *ReportUseCase) SamplePDF(charLimit *int) ([]byte, error) {
	limit, err := uc.charLimit(charLimit)
	if err != nil {
		return nil, err
	}
	return uc.render(SampleRows(), limit)
}

// Email renders the label sheet and mails it to the given address.
func (uc *ReportUseCase) Email(ctx context.Context, to string, charLimit *int) error {
	to = strings.TrimSpace(to)
	if !utils.IsEmail(to) {
		return errors.FieldValidation("email", subscriber.MsgInvalidEmail)
	}
	pdf, err := uc.PDF(ctx, charLimit)
	if err != nil {
		return err
	}
	if err := uc.mailer.SendReport(ctx, to, uc.fileName, pdf); err != nil {
		uc.logger.Errorw("failed to mail subscriber report", "to", utils.MaskEmail(to), "error", err)
		return errors.NewInternalError("Failed to send the report email", err.Error())
	}
	uc.logger.Infow("subscriber report mailed", "to", utils.MaskEmail(to), "bytes", len(pdf))
	return nil
}

func (uc *ReportUseCase) render(rows []subscriber.ReportRow, limit int) ([]byte, error) {
	pdf, err := uc.renderer.Render(rows, limit)
	if err != nil {
		uc.logger.Errorw("failed to render label sheet", "rows", len(rows), "error", err)
		return nil, fmt.Errorf("failed to render label sheet: %w", err)
	}
	return pdf, nil
}

// SampleRows returns placeholder rows long enough to show truncation.
func SampleRows() []subscriber.ReportRow {
	row := subscriber.ReportRow{
		Name: "John Doe " + strings.Repeat("X", 28),
		AddressLines: []string{
			"123 Elm Street " + strings.Repeat("Y", 25),
			"Apartment 4B " + strings.Repeat("Z", 28),
		},
		City:     "Springfield " + strings.Repeat("A", 14),
		District: "Sangamon " + strings.Repeat("B", 17),
		State:    "Illinois " + strings.Repeat("C", 18),
		Pincode:  "62704 " + strings.Repeat("D", 20),
		Phone:    "123-456-7890 " + strings.Repeat("E", 25),
	}
	rows := make([]subscriber.ReportRow, sampleRowCount)
	for i := range rows {
		rows[i] = row
	}
	return rows
}
