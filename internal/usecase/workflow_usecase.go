package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"assetnotifier/internal/domain/entity"
	"assetnotifier/internal/domain/repository"
	"assetnotifier/pkg/errors"
	"assetnotifier/pkg/logger"
)

const (
	settingScope       = "PortalConfiguration"
	settingHostnameKey = "Hostname"
	hostnameValueKey   = "HostnameConfiguration"

	thumbnailRendition = "thumbnail"
	uploadDateFormat   = "02/01/2006"
	descriptionLocale  = "nl-NL"
)

var htmlTagPattern = regexp.MustCompile(`<.*?>`)

// WorkflowUseCase runs the three asset lifecycle notification workflows.
// Each invocation is a linear pipeline: ensure template, provision public
// link, resolve recipients, bind variables, dispatch.
type WorkflowUseCase struct {
	assetRepo    repository.AssetRepository
	settingsRepo repository.SettingsRepository
	templates    *TemplateUseCase
	publicLinks  *PublicLinkUseCase
	recipients   *RecipientUseCase
	notifier     *NotificationUseCase
}

func NewWorkflowUseCase(
	assetRepo repository.AssetRepository,
	settingsRepo repository.SettingsRepository,
	templates *TemplateUseCase,
	publicLinks *PublicLinkUseCase,
	recipients *RecipientUseCase,
	notifier *NotificationUseCase,
) *WorkflowUseCase {
	return &WorkflowUseCase{
		assetRepo:    assetRepo,
		settingsRepo: settingsRepo,
		templates:    templates,
		publicLinks:  publicLinks,
		recipients:   recipients,
		notifier:     notifier,
	}
}

// sharedValues are derived once per invocation and reused by every template
// of that invocation.
type sharedValues struct {
	title        string
	dateOfUpload string
	host         string
	publicLink   string
	logoURL      string
	assetURL     string
}

func (u *WorkflowUseCase) prepare(ctx context.Context, asset *entity.Asset) (*sharedValues, error) {
	createdOn, err := time.Parse(time.RFC3339, asset.CreatedOn)
	if err != nil {
		return nil, errors.Internal("Asset "+asset.ID+" has an unparseable creation timestamp", err)
	}

	host, err := u.resolveHost(ctx)
	if err != nil {
		return nil, err
	}

	linkID, err := u.publicLinks.Create(ctx, asset.ID, thumbnailRendition)
	if err != nil {
		return nil, err
	}
	publicLink, err := u.publicLinks.Fetch(ctx, host, linkID)
	if err != nil {
		return nil, err
	}

	return &sharedValues{
		title:        asset.FileName,
		dateOfUpload: createdOn.Format(uploadDateFormat),
		host:         host,
		publicLink:   publicLink,
		logoURL:      "https://" + host + "/api/public/content/email-logo",
		assetURL:     "https://" + host + "/nl-NL/asset/" + asset.ID,
	}, nil
}

// resolveHost reads the portal host name from the repository settings. A
// missing host aborts the invocation instead of leaking into broken URLs.
func (u *WorkflowUseCase) resolveHost(ctx context.Context) (string, error) {
	value, err := u.settingsRepo.GetSetting(ctx, settingScope, settingHostnameKey)
	if err != nil {
		return "", err
	}

	host, _ := value[hostnameValueKey].(string)
	if host == "" {
		return "", errors.Internal("Portal hostname is not configured", nil)
	}
	return host, nil
}

// ProcessApproved notifies the asset's uploader that the asset was approved.
func (u *WorkflowUseCase) ProcessApproved(ctx context.Context, assetID string) error {
	asset, err := u.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		return err
	}

	shared, err := u.prepare(ctx, asset)
	if err != nil {
		return err
	}

	if err := u.templates.Ensure(ctx, ApprovedTemplate()); err != nil {
		return err
	}

	username, err := u.recipients.ResolveCreator(ctx, asset.CreatedBy)
	if err != nil {
		return err
	}

	variables := map[string]interface{}{
		"AssetTitle":   shared.title,
		"DateOfUpload": shared.dateOfUpload,
		"Logo":         shared.logoURL,
		"AssetUrl":     shared.assetURL,
		"AssetId":      asset.ID,
		"AssetVersion": asset.Version,
		"AssetCreator": ShortID(username),
		"Host":         shared.host,
		"PublicLink":   shared.publicLink,
	}

	if err := u.notifier.Dispatch(ctx, ApprovedTemplateName, []string{username}, variables); err != nil {
		return err
	}

	logger.Info("Asset approved notification sent: asset=%s", asset.ID)
	return nil
}

// ProcessRejected notifies the asset's uploader that the asset was rejected,
// including the rejection reason.
func (u *WorkflowUseCase) ProcessRejected(ctx context.Context, assetID string) error {
	asset, err := u.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		return err
	}

	shared, err := u.prepare(ctx, asset)
	if err != nil {
		return err
	}

	if err := u.templates.Ensure(ctx, RejectedTemplate()); err != nil {
		return err
	}

	username, err := u.recipients.ResolveCreator(ctx, asset.CreatedBy)
	if err != nil {
		return err
	}

	variables := map[string]interface{}{
		"AssetTitle":      shared.title,
		"DateOfUpload":    shared.dateOfUpload,
		"ReasonforReject": asset.RejectionReason,
		"Logo":            shared.logoURL,
		"AssetUrl":        shared.assetURL,
		"AssetId":         asset.ID,
		"AssetVersion":    asset.Version,
		"AssetCreator":    ShortID(username),
		"Host":            shared.host,
		"PublicLink":      shared.publicLink,
	}

	if err := u.notifier.Dispatch(ctx, RejectedTemplateName, []string{username}, variables); err != nil {
		return err
	}

	logger.Info("Asset rejected notification sent: asset=%s", asset.ID)
	return nil
}

// ProcessSubmittedForApproval fans out to two audiences: the approver group
// first, then the uploader. Both sends share the values derived up front.
func (u *WorkflowUseCase) ProcessSubmittedForApproval(ctx context.Context, assetID string) error {
	asset, err := u.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		return err
	}

	shared, err := u.prepare(ctx, asset)
	if err != nil {
		return err
	}

	if err := u.notifyApprovers(ctx, asset, shared); err != nil {
		return err
	}
	return u.notifyCreator(ctx, asset, shared)
}

func (u *WorkflowUseCase) notifyApprovers(ctx context.Context, asset *entity.Asset, shared *sharedValues) error {
	if err := u.templates.Ensure(ctx, ApproverTemplate()); err != nil {
		return err
	}

	usernames, err := u.recipients.ResolveGroup(ctx, ApproversGroupName)
	if err != nil {
		return err
	}

	shortIDs := make([]string, 0, len(usernames))
	for _, username := range usernames {
		shortIDs = append(shortIDs, ShortID(username))
	}

	variables := map[string]interface{}{
		"FirstNameOfRecipient": strings.Join(shortIDs, " "),
		"AssetTitle":           shared.title,
		"DateOfUpload":         shared.dateOfUpload,
		"AssetUrl":             shared.assetURL,
		"AssetId":              asset.ID,
		"AssetVersion":         asset.Version,
		"Logo":                 shared.logoURL,
		"Host":                 shared.host,
		"PublicLink":           shared.publicLink,
	}

	if err := u.notifier.Dispatch(ctx, ApproverTemplateName, usernames, variables); err != nil {
		return err
	}

	logger.Info("Asset submission notification sent to approvers: asset=%s", asset.ID)
	return nil
}

func (u *WorkflowUseCase) notifyCreator(ctx context.Context, asset *entity.Asset, shared *sharedValues) error {
	if err := u.templates.Ensure(ctx, CreatorTemplate()); err != nil {
		return err
	}

	username, err := u.recipients.ResolveCreator(ctx, asset.CreatedBy)
	if err != nil {
		return err
	}

	description := htmlTagPattern.ReplaceAllString(asset.Description(descriptionLocale), "")

	variables := map[string]interface{}{
		"AssetTitle":       shared.title,
		"AssetDescription": description,
		"DateOfUpload":     shared.dateOfUpload,
		"AssetId":          asset.ID,
		"AssetVersion":     asset.Version,
		"Logo":             shared.logoURL,
		"Host":             shared.host,
		"PublicLink":       shared.publicLink,
	}

	if err := u.notifier.Dispatch(ctx, CreatorTemplateName, []string{username}, variables); err != nil {
		return err
	}

	logger.Info("Asset submission notification sent to uploader: asset=%s", asset.ID)
	return nil
}
