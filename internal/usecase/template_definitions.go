package usecase

import (
	"assetnotifier/internal/domain/entity"
)

const (
	ApprovedTemplateName = "ApprovedAssetEmailTemplate"
	RejectedTemplateName = "RejectedEmailTemplate"
	ApproverTemplateName = "ApproverEmailTemplate"
	CreatorTemplateName  = "CreatorEmailTemplate"

	ApproversGroupName = "Content-Approvers"
)

// LocalizedContent is the fixed copy installed for one culture when a
// template is first created. Templates can be edited in the portal later.
type LocalizedContent struct {
	Subject     string
	Description string
	Body        string
	Label       string
}

// TemplateDefinition describes one workflow's mail template: unique name,
// declared variable schema, and per-culture copy keyed by a display-name
// keyword ("English", "Dutch").
type TemplateDefinition struct {
	Name      string
	Variables []entity.TemplateVariable
	Content   map[string]LocalizedContent
}

func ApprovedTemplate() TemplateDefinition {
	return TemplateDefinition{
		Name: ApprovedTemplateName,
		Variables: []entity.TemplateVariable{
			{Name: "AssetTitle", Type: entity.VariableTypeString},
			{Name: "DateOfUpload", Type: entity.VariableTypeString},
			{Name: "Logo", Type: entity.VariableTypeString},
			{Name: "AssetUrl", Type: entity.VariableTypeString},
			{Name: "AssetId", Type: entity.VariableTypeString},
			{Name: "AssetVersion", Type: entity.VariableTypeLong},
			{Name: "AssetCreator", Type: entity.VariableTypeString},
			{Name: "Host", Type: entity.VariableTypeString},
			{Name: "PublicLink", Type: entity.VariableTypeString},
		},
		Content: map[string]LocalizedContent{
			"English": {
				Subject:     "Your asset has been approved",
				Description: "Sent to the uploader when an asset is approved",
				Body:        "Good news {AssetCreator}: \"{AssetTitle}\" (uploaded {DateOfUpload}) has been approved and is now available at {AssetUrl}.",
				Label:       "Asset approved",
			},
			"Dutch": {
				Subject:     "Je asset is goedgekeurd",
				Description: "Verzonden naar de uploader wanneer een asset is goedgekeurd",
				Body:        "Goed nieuws {AssetCreator}: \"{AssetTitle}\" (geupload op {DateOfUpload}) is goedgekeurd en beschikbaar via {AssetUrl}.",
				Label:       "Asset goedgekeurd",
			},
		},
	}
}

func RejectedTemplate() TemplateDefinition {
	return TemplateDefinition{
		Name: RejectedTemplateName,
		Variables: []entity.TemplateVariable{
			{Name: "AssetTitle", Type: entity.VariableTypeString},
			{Name: "DateOfUpload", Type: entity.VariableTypeString},
			{Name: "ReasonforReject", Type: entity.VariableTypeString},
			{Name: "Logo", Type: entity.VariableTypeString},
			{Name: "AssetUrl", Type: entity.VariableTypeString},
			{Name: "AssetId", Type: entity.VariableTypeString},
			{Name: "AssetVersion", Type: entity.VariableTypeLong},
			{Name: "AssetCreator", Type: entity.VariableTypeString},
			{Name: "Host", Type: entity.VariableTypeString},
			{Name: "PublicLink", Type: entity.VariableTypeString},
		},
		Content: map[string]LocalizedContent{
			"English": {
				Subject:     "Your asset was rejected",
				Description: "Sent to the uploader when an asset is rejected",
				Body:        "\"{AssetTitle}\" (uploaded {DateOfUpload}) was rejected: {ReasonforReject}. Review it at {AssetUrl}.",
				Label:       "Asset rejected",
			},
			"Dutch": {
				Subject:     "Je asset is afgekeurd",
				Description: "Verzonden naar de uploader wanneer een asset is afgekeurd",
				Body:        "\"{AssetTitle}\" (geupload op {DateOfUpload}) is afgekeurd: {ReasonforReject}. Bekijk de asset via {AssetUrl}.",
				Label:       "Asset afgekeurd",
			},
		},
	}
}

func ApproverTemplate() TemplateDefinition {
	return TemplateDefinition{
		Name: ApproverTemplateName,
		Variables: []entity.TemplateVariable{
			{Name: "FirstNameOfRecipient", Type: entity.VariableTypeString},
			{Name: "AssetTitle", Type: entity.VariableTypeString},
			{Name: "DateOfUpload", Type: entity.VariableTypeString},
			{Name: "AssetUrl", Type: entity.VariableTypeString},
			{Name: "AssetId", Type: entity.VariableTypeString},
			{Name: "AssetVersion", Type: entity.VariableTypeLong},
			{Name: "Logo", Type: entity.VariableTypeString},
			{Name: "Host", Type: entity.VariableTypeString},
			{Name: "PublicLink", Type: entity.VariableTypeString},
		},
		Content: map[string]LocalizedContent{
			"English": {
				Subject:     "An asset is waiting for your approval",
				Description: "Sent to the approver group when an asset is submitted for approval",
				Body:        "Hi {FirstNameOfRecipient}, \"{AssetTitle}\" (uploaded {DateOfUpload}) is waiting for review: {AssetUrl}.",
				Label:       "Asset submitted - approvers",
			},
			"Dutch": {
				Subject:     "Een asset wacht op je goedkeuring",
				Description: "Verzonden naar de approvers wanneer een asset ter goedkeuring is aangeboden",
				Body:        "Hoi {FirstNameOfRecipient}, \"{AssetTitle}\" (geupload op {DateOfUpload}) wacht op beoordeling: {AssetUrl}.",
				Label:       "Asset aangeboden - approvers",
			},
		},
	}
}

func CreatorTemplate() TemplateDefinition {
	return TemplateDefinition{
		Name: CreatorTemplateName,
		Variables: []entity.TemplateVariable{
			{Name: "AssetTitle", Type: entity.VariableTypeString},
			{Name: "AssetDescription", Type: entity.VariableTypeString},
			{Name: "DateOfUpload", Type: entity.VariableTypeString},
			{Name: "AssetId", Type: entity.VariableTypeString},
			{Name: "AssetVersion", Type: entity.VariableTypeLong},
			{Name: "Logo", Type: entity.VariableTypeString},
			{Name: "Host", Type: entity.VariableTypeString},
			{Name: "PublicLink", Type: entity.VariableTypeString},
		},
		Content: map[string]LocalizedContent{
			"English": {
				Subject:     "Your asset was submitted for approval",
				Description: "Sent to the uploader when an asset is submitted for approval",
				Body:        "\"{AssetTitle}\" (uploaded {DateOfUpload}) was submitted for approval. You will be notified once it is reviewed.",
				Label:       "Asset submitted - uploader",
			},
			"Dutch": {
				Subject:     "Je asset is ter goedkeuring aangeboden",
				Description: "Verzonden naar de uploader wanneer een asset ter goedkeuring is aangeboden",
				Body:        "\"{AssetTitle}\" (geupload op {DateOfUpload}) is ter goedkeuring aangeboden. Je krijgt bericht zodra de beoordeling is afgerond.",
				Label:       "Asset aangeboden - uploader",
			},
		},
	}
}

// AllTemplates lists every template definition the workflows use, in the
// order they are ensured when pre-provisioning.
func AllTemplates() []TemplateDefinition {
	return []TemplateDefinition{
		ApprovedTemplate(),
		RejectedTemplate(),
		ApproverTemplate(),
		CreatorTemplate(),
	}
}
