// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/tracklane/tracklane/ent/compensationsettings"
	"github.com/tracklane/tracklane/ent/payoutrecord"
	"github.com/tracklane/tracklane/ent/payoutrun"
	"github.com/tracklane/tracklane/ent/sale"
	"github.com/tracklane/tracklane/ent/schema"
	"github.com/tracklane/tracklane/ent/syncproposal"
	"github.com/tracklane/tracklane/ent/track"
	"github.com/tracklane/tracklane/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	compensationsettingsFields := schema.CompensationSettings{}.Fields()
	_ = compensationsettingsFields
	// compensationsettingsDescStandardRate is the schema descriptor for standard_rate field.
	compensationsettingsDescStandardRate := compensationsettingsFields[1].Descriptor()
	// compensationsettings.DefaultStandardRate holds the default value on creation for the standard_rate field.
	compensationsettings.DefaultStandardRate = compensationsettingsDescStandardRate.Default.(float64)
	// compensationsettings.StandardRateValidator is a validator for the "standard_rate" field. It is called by the builders before save.
	compensationsettings.StandardRateValidator = func() func(float64) error {
		validators := compensationsettingsDescStandardRate.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(standard_rate float64) error {
			for _, fn := range fns {
				if err := fn(standard_rate); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// compensationsettingsDescExclusiveRate is the schema descriptor for exclusive_rate field.
	compensationsettingsDescExclusiveRate := compensationsettingsFields[2].Descriptor()
	// compensationsettings.DefaultExclusiveRate holds the default value on creation for the exclusive_rate field.
	compensationsettings.DefaultExclusiveRate = compensationsettingsDescExclusiveRate.Default.(float64)
	// compensationsettings.ExclusiveRateValidator is a validator for the "exclusive_rate" field. It is called by the builders before save.
	compensationsettings.ExclusiveRateValidator = func() func(float64) error {
		validators := compensationsettingsDescExclusiveRate.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(exclusive_rate float64) error {
			for _, fn := range fns {
				if err := fn(exclusive_rate); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// compensationsettingsDescSyncFeeRate is the schema descriptor for sync_fee_rate field.
	compensationsettingsDescSyncFeeRate := compensationsettingsFields[3].Descriptor()
	// compensationsettings.DefaultSyncFeeRate holds the default value on creation for the sync_fee_rate field.
	compensationsettings.DefaultSyncFeeRate = compensationsettingsDescSyncFeeRate.Default.(float64)
	// compensationsettings.SyncFeeRateValidator is a validator for the "sync_fee_rate" field. It is called by the builders before save.
	compensationsettings.SyncFeeRateValidator = func() func(float64) error {
		validators := compensationsettingsDescSyncFeeRate.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(sync_fee_rate float64) error {
			for _, fn := range fns {
				if err := fn(sync_fee_rate); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// compensationsettingsDescVolumeBonusRate is the schema descriptor for volume_bonus_rate field.
	compensationsettingsDescVolumeBonusRate := compensationsettingsFields[4].Descriptor()
	// compensationsettings.DefaultVolumeBonusRate holds the default value on creation for the volume_bonus_rate field.
	compensationsettings.DefaultVolumeBonusRate = compensationsettingsDescVolumeBonusRate.Default.(float64)
	// compensationsettings.VolumeBonusRateValidator is a validator for the "volume_bonus_rate" field. It is called by the builders before save.
	compensationsettings.VolumeBonusRateValidator = func() func(float64) error {
		validators := compensationsettingsDescVolumeBonusRate.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(volume_bonus_rate float64) error {
			for _, fn := range fns {
				if err := fn(volume_bonus_rate); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// compensationsettingsDescVolumeBonusThreshold is the schema descriptor for volume_bonus_threshold field.
	compensationsettingsDescVolumeBonusThreshold := compensationsettingsFields[5].Descriptor()
	// compensationsettings.DefaultVolumeBonusThreshold holds the default value on creation for the volume_bonus_threshold field.
	compensationsettings.DefaultVolumeBonusThreshold = compensationsettingsDescVolumeBonusThreshold.Default.(int)
	// compensationsettings.VolumeBonusThresholdValidator is a validator for the "volume_bonus_threshold" field. It is called by the builders before save.
	compensationsettings.VolumeBonusThresholdValidator = compensationsettingsDescVolumeBonusThreshold.Validators[0].(func(int) error)
	// compensationsettingsDescUpdatedAt is the schema descriptor for updated_at field.
	compensationsettingsDescUpdatedAt := compensationsettingsFields[6].Descriptor()
	// compensationsettings.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	compensationsettings.DefaultUpdatedAt = compensationsettingsDescUpdatedAt.Default.(func() time.Time)
	// compensationsettings.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	compensationsettings.UpdateDefaultUpdatedAt = compensationsettingsDescUpdatedAt.UpdateDefault.(func() time.Time)
	payoutrecordFields := schema.PayoutRecord{}.Fields()
	_ = payoutrecordFields
	// payoutrecordDescProducerID is the schema descriptor for producer_id field.
	payoutrecordDescProducerID := payoutrecordFields[0].Descriptor()
	// payoutrecord.ProducerIDValidator is a validator for the "producer_id" field. It is called by the builders before save.
	payoutrecord.ProducerIDValidator = payoutrecordDescProducerID.Validators[0].(func(int) error)
	// payoutrecordDescMonth is the schema descriptor for month field.
	payoutrecordDescMonth := payoutrecordFields[1].Descriptor()
	// payoutrecord.MonthValidator is a validator for the "month" field. It is called by the builders before save.
	payoutrecord.MonthValidator = payoutrecordDescMonth.Validators[0].(func(string) error)
	// payoutrecordDescAmount is the schema descriptor for amount field.
	payoutrecordDescAmount := payoutrecordFields[2].Descriptor()
	// payoutrecord.AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	payoutrecord.AmountValidator = payoutrecordDescAmount.Validators[0].(func(float64) error)
	// payoutrecordDescRetryCount is the schema descriptor for retry_count field.
	payoutrecordDescRetryCount := payoutrecordFields[6].Descriptor()
	// payoutrecord.DefaultRetryCount holds the default value on creation for the retry_count field.
	payoutrecord.DefaultRetryCount = payoutrecordDescRetryCount.Default.(int)
	// payoutrecord.RetryCountValidator is a validator for the "retry_count" field. It is called by the builders before save.
	payoutrecord.RetryCountValidator = payoutrecordDescRetryCount.Validators[0].(func(int) error)
	// payoutrecordDescCreatedAt is the schema descriptor for created_at field.
	payoutrecordDescCreatedAt := payoutrecordFields[9].Descriptor()
	// payoutrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	payoutrecord.DefaultCreatedAt = payoutrecordDescCreatedAt.Default.(func() time.Time)
	// payoutrecordDescUpdatedAt is the schema descriptor for updated_at field.
	payoutrecordDescUpdatedAt := payoutrecordFields[10].Descriptor()
	// payoutrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	payoutrecord.DefaultUpdatedAt = payoutrecordDescUpdatedAt.Default.(func() time.Time)
	// payoutrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	payoutrecord.UpdateDefaultUpdatedAt = payoutrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	payoutrunFields := schema.PayoutRun{}.Fields()
	_ = payoutrunFields
	// payoutrunDescMonth is the schema descriptor for month field.
	payoutrunDescMonth := payoutrunFields[0].Descriptor()
	// payoutrun.MonthValidator is a validator for the "month" field. It is called by the builders before save.
	payoutrun.MonthValidator = payoutrunDescMonth.Validators[0].(func(string) error)
	// payoutrunDescStartedAt is the schema descriptor for started_at field.
	payoutrunDescStartedAt := payoutrunFields[4].Descriptor()
	// payoutrun.DefaultStartedAt holds the default value on creation for the started_at field.
	payoutrun.DefaultStartedAt = payoutrunDescStartedAt.Default.(func() time.Time)
	saleFields := schema.Sale{}.Fields()
	_ = saleFields
	// saleDescTrackID is the schema descriptor for track_id field.
	saleDescTrackID := saleFields[0].Descriptor()
	// sale.TrackIDValidator is a validator for the "track_id" field. It is called by the builders before save.
	sale.TrackIDValidator = saleDescTrackID.Validators[0].(func(int) error)
	// saleDescProducerID is the schema descriptor for producer_id field.
	saleDescProducerID := saleFields[1].Descriptor()
	// sale.ProducerIDValidator is a validator for the "producer_id" field. It is called by the builders before save.
	sale.ProducerIDValidator = saleDescProducerID.Validators[0].(func(int) error)
	// saleDescBuyerID is the schema descriptor for buyer_id field.
	saleDescBuyerID := saleFields[2].Descriptor()
	// sale.BuyerIDValidator is a validator for the "buyer_id" field. It is called by the builders before save.
	sale.BuyerIDValidator = saleDescBuyerID.Validators[0].(func(int) error)
	// saleDescAmount is the schema descriptor for amount field.
	saleDescAmount := saleFields[4].Descriptor()
	// sale.AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	sale.AmountValidator = saleDescAmount.Validators[0].(func(float64) error)
	// saleDescCreatedAt is the schema descriptor for created_at field.
	saleDescCreatedAt := saleFields[9].Descriptor()
	// sale.DefaultCreatedAt holds the default value on creation for the created_at field.
	sale.DefaultCreatedAt = saleDescCreatedAt.Default.(func() time.Time)
	// saleDescUpdatedAt is the schema descriptor for updated_at field.
	saleDescUpdatedAt := saleFields[10].Descriptor()
	// sale.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sale.DefaultUpdatedAt = saleDescUpdatedAt.Default.(func() time.Time)
	// sale.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sale.UpdateDefaultUpdatedAt = saleDescUpdatedAt.UpdateDefault.(func() time.Time)
	syncproposalFields := schema.SyncProposal{}.Fields()
	_ = syncproposalFields
	// syncproposalDescProducerID is the schema descriptor for producer_id field.
	syncproposalDescProducerID := syncproposalFields[0].Descriptor()
	// syncproposal.ProducerIDValidator is a validator for the "producer_id" field. It is called by the builders before save.
	syncproposal.ProducerIDValidator = syncproposalDescProducerID.Validators[0].(func(int) error)
	// syncproposalDescTrackID is the schema descriptor for track_id field.
	syncproposalDescTrackID := syncproposalFields[1].Descriptor()
	// syncproposal.TrackIDValidator is a validator for the "track_id" field. It is called by the builders before save.
	syncproposal.TrackIDValidator = syncproposalDescTrackID.Validators[0].(func(int) error)
	// syncproposalDescProjectName is the schema descriptor for project_name field.
	syncproposalDescProjectName := syncproposalFields[2].Descriptor()
	// syncproposal.ProjectNameValidator is a validator for the "project_name" field. It is called by the builders before save.
	syncproposal.ProjectNameValidator = syncproposalDescProjectName.Validators[0].(func(string) error)
	// syncproposalDescFee is the schema descriptor for fee field.
	syncproposalDescFee := syncproposalFields[3].Descriptor()
	// syncproposal.FeeValidator is a validator for the "fee" field. It is called by the builders before save.
	syncproposal.FeeValidator = syncproposalDescFee.Validators[0].(func(float64) error)
	// syncproposalDescCreatedAt is the schema descriptor for created_at field.
	syncproposalDescCreatedAt := syncproposalFields[6].Descriptor()
	// syncproposal.DefaultCreatedAt holds the default value on creation for the created_at field.
	syncproposal.DefaultCreatedAt = syncproposalDescCreatedAt.Default.(func() time.Time)
	// syncproposalDescUpdatedAt is the schema descriptor for updated_at field.
	syncproposalDescUpdatedAt := syncproposalFields[7].Descriptor()
	// syncproposal.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	syncproposal.DefaultUpdatedAt = syncproposalDescUpdatedAt.Default.(func() time.Time)
	// syncproposal.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	syncproposal.UpdateDefaultUpdatedAt = syncproposalDescUpdatedAt.UpdateDefault.(func() time.Time)
	trackFields := schema.Track{}.Fields()
	_ = trackFields
	// trackDescProducerID is the schema descriptor for producer_id field.
	trackDescProducerID := trackFields[0].Descriptor()
	// track.ProducerIDValidator is a validator for the "producer_id" field. It is called by the builders before save.
	track.ProducerIDValidator = trackDescProducerID.Validators[0].(func(int) error)
	// trackDescTitle is the schema descriptor for title field.
	trackDescTitle := trackFields[1].Descriptor()
	// track.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	track.TitleValidator = trackDescTitle.Validators[0].(func(string) error)
	// trackDescStandardPrice is the schema descriptor for standard_price field.
	trackDescStandardPrice := trackFields[4].Descriptor()
	// track.DefaultStandardPrice holds the default value on creation for the standard_price field.
	track.DefaultStandardPrice = trackDescStandardPrice.Default.(float64)
	// trackDescExclusivePrice is the schema descriptor for exclusive_price field.
	trackDescExclusivePrice := trackFields[5].Descriptor()
	// track.DefaultExclusivePrice holds the default value on creation for the exclusive_price field.
	track.DefaultExclusivePrice = trackDescExclusivePrice.Default.(float64)
	// trackDescCreatedAt is the schema descriptor for created_at field.
	trackDescCreatedAt := trackFields[7].Descriptor()
	// track.DefaultCreatedAt holds the default value on creation for the created_at field.
	track.DefaultCreatedAt = trackDescCreatedAt.Default.(func() time.Time)
	// trackDescUpdatedAt is the schema descriptor for updated_at field.
	trackDescUpdatedAt := trackFields[8].Descriptor()
	// track.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	track.DefaultUpdatedAt = trackDescUpdatedAt.Default.(func() time.Time)
	// track.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	track.UpdateDefaultUpdatedAt = trackDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[2].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescActive is the schema descriptor for active field.
	userDescActive := userFields[6].Descriptor()
	// user.DefaultActive holds the default value on creation for the active field.
	user.DefaultActive = userDescActive.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[8].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[9].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
}
