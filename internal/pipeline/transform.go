package pipeline

import (
	"gokz-dump/internal/logging"
	"gokz-dump/internal/model"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Transform validates one raw row and converts it into a Record.
// Errors name the offending row and field; the typed cause
// (RangeError, UnknownModeError, TimestampFormatError) is kept for errors.As.
func Transform(v model.Variant, row model.RawTime) (model.Record, error) {
	fail := func(err error) (model.Record, error) {
		return model.Record{}, errors.Wrapf(err, "time %d", row.TimeID)
	}

	id, err := toUint32("TimeID", row.TimeID)
	if err != nil {
		return fail(err)
	}

	steamID32, err := toUint32("SteamID32", row.SteamID32)
	if err != nil {
		return fail(err)
	}

	mapField, mapValue := "MapCourseID", row.MapCourseID
	if v.Joined {
		mapField, mapValue = "MapID", row.MapID
	}
	mapID, err := toUint16(mapField, mapValue)
	if err != nil {
		return fail(err)
	}

	var course *model.CourseInfo
	if v.Joined {
		stage, err := toUint8("Course", row.Course)
		if err != nil {
			return fail(err)
		}
		course = &model.CourseInfo{
			PlayerName: row.PlayerName,
			MapName:    row.MapName,
			Stage:      stage,
		}
	}

	mode, err := v.Mode(row.Mode)
	if err != nil {
		return fail(errors.WithMessage(err, "Mode"))
	}

	teleports, err := toUint32("Teleports", row.Teleports)
	if err != nil {
		return fail(err)
	}

	created, err := parseCreated(row.Created)
	if err != nil {
		return fail(errors.WithMessage(err, "Created"))
	}

	return model.Record{
		ID:        id,
		SteamID:   model.NewSteamID(steamID32),
		MapID:     mapID,
		Mode:      mode,
		Time:      v.Seconds(row.RunTime),
		Teleports: teleports,
		CreatedOn: created,
		Course:    course,
	}, nil
}

// TransformAll converts rows in order, dropping and logging every row that
// fails validation. The returned records keep extraction order.
func TransformAll(v model.Variant, rows []model.RawTime, log *logrus.Entry) ([]model.Record, []error) {
	if log == nil {
		log = logrus.NewEntry(logging.Logger)
	}

	records := make([]model.Record, 0, len(rows))
	var errs []error
	for _, row := range rows {
		rec, err := Transform(v, row)
		if err != nil {
			log.WithField("time_id", row.TimeID).WithError(err).Warn("Failed to parse record")
			errs = append(errs, err)
			continue
		}
		records = append(records, rec)
	}
	return records, errs
}
