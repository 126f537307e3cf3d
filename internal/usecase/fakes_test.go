package usecase

import (
	"context"
	"fmt"
	"sync"

	"assetnotifier/internal/domain/entity"
	"assetnotifier/pkg/errors"
)

type fakeTemplateRepo struct {
	mu        sync.Mutex
	templates map[string]*entity.MailTemplate
	getErr    error
	createErr error
	creates   int
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{templates: map[string]*entity.MailTemplate{}}
}

func (f *fakeTemplateRepo) GetByName(ctx context.Context, name, locale string) (*entity.MailTemplate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	template, ok := f.templates[name]
	if !ok {
		return nil, errors.NotFound("Mail template", nil)
	}
	return template, nil
}

func (f *fakeTemplateRepo) Create(ctx context.Context, template *entity.MailTemplate) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return "", f.createErr
	}
	if existing, ok := f.templates[template.Name]; ok {
		return existing.ID, nil
	}
	f.creates++
	template.ID = "tpl-" + template.Name
	f.templates[template.Name] = template
	return template.ID, nil
}

type fakeLocaleRepo struct {
	locales []entity.Locale
	err     error
}

func (f *fakeLocaleRepo) List(ctx context.Context) ([]entity.Locale, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.locales, nil
}

type fakeAssetRepo struct {
	assets map[string]*entity.Asset
}

func (f *fakeAssetRepo) GetByID(ctx context.Context, id string) (*entity.Asset, error) {
	asset, ok := f.assets[id]
	if !ok {
		return nil, errors.NotFound("Asset", nil)
	}
	return asset, nil
}

type fakeUserRepo struct {
	users      map[string]*entity.User
	groups     map[string]*entity.UserGroup
	groupQuery []*entity.User
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (f *fakeUserRepo) GetGroupByName(ctx context.Context, name string) (*entity.UserGroup, error) {
	group, ok := f.groups[name]
	if !ok {
		return nil, errors.NotFound("User group", nil)
	}
	return group, nil
}

// groupQuery stands in for the relation query, which may return a broader
// set than the group's actual members.
func (f *fakeUserRepo) GetUsersByGroupID(ctx context.Context, groupID string) ([]*entity.User, error) {
	return f.groupQuery, nil
}

func (f *fakeUserRepo) GetUsernamesByIDs(ctx context.Context, ids []string) ([]string, error) {
	var usernames []string
	for _, id := range ids {
		user, ok := f.users[id]
		if !ok || user.Username == "" {
			continue
		}
		usernames = append(usernames, user.Username)
	}
	return usernames, nil
}

type fakeLinkRepo struct {
	links       map[string]*entity.PublicLink
	nextID      int
	materialize bool
}

func newFakeLinkRepo(materialize bool) *fakeLinkRepo {
	return &fakeLinkRepo{links: map[string]*entity.PublicLink{}, materialize: materialize}
}

func (f *fakeLinkRepo) Create(ctx context.Context, link *entity.PublicLink) (string, error) {
	f.nextID++
	link.ID = fmt.Sprintf("link-%d", f.nextID)
	if f.materialize {
		link.RelativeURL = link.AssetID + "/" + link.Rendition
		link.VersionHash = "v9"
	}
	stored := *link
	f.links[link.ID] = &stored
	return link.ID, nil
}

func (f *fakeLinkRepo) GetByID(ctx context.Context, id string) (*entity.PublicLink, error) {
	link, ok := f.links[id]
	if !ok {
		return nil, errors.NotFound("Public link", nil)
	}
	return link, nil
}

type fakeSettingsRepo struct {
	value map[string]interface{}
	err   error
}

func (f *fakeSettingsRepo) GetSetting(ctx context.Context, scope, key string) (map[string]interface{}, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.value, nil
}

// fakeMailService records accepted requests and, like the real delivery
// subsystem, rejects variables not declared in the template's schema.
type fakeMailService struct {
	schemas map[string][]entity.TemplateVariable
	sent    []*entity.NotificationRequest
	err     error
}

func newFakeMailService() *fakeMailService {
	return &fakeMailService{schemas: map[string][]entity.TemplateVariable{}}
}

func (f *fakeMailService) declareAll(defs []TemplateDefinition) {
	for _, def := range defs {
		f.schemas[def.Name] = def.Variables
	}
}

func (f *fakeMailService) SendEmail(ctx context.Context, req *entity.NotificationRequest) error {
	if f.err != nil {
		return f.err
	}
	if schema, ok := f.schemas[req.TemplateName]; ok {
		declared := map[string]bool{}
		for _, v := range schema {
			declared[v.Name] = true
		}
		for name := range req.Variables {
			if !declared[name] {
				return errors.BadRequest("Variable "+name+" is not declared by template "+req.TemplateName, nil)
			}
		}
	}
	f.sent = append(f.sent, req)
	return nil
}
