package repository

import "portfolio/internal/models"

type PersonalInfoRepository struct {
	root *Repository
}

func (p *PersonalInfoRepository) load() models.PersonalInfo {
	return loadOrSeed(p.root, models.KeyPersonalInfo, models.DefaultPersonalInfo)
}

func (p *PersonalInfoRepository) Get() models.PersonalInfo {
	p.root.mu.Lock()
	defer p.root.mu.Unlock()
	return p.load()
}

func (p *PersonalInfoRepository) Update(patch models.PersonalInfoPatch) (models.PersonalInfo, error) {
	p.root.mu.Lock()
	defer p.root.mu.Unlock()

	info := p.load()
	info.Apply(patch)
	if err := validateRecord(&info); err != nil {
		return models.PersonalInfo{}, err
	}
	if err := p.root.persist(models.KeyPersonalInfo, info); err != nil {
		return models.PersonalInfo{}, err
	}
	return info, nil
}

type SiteConfigRepository struct {
	root *Repository
}

func (s *SiteConfigRepository) load() models.SiteConfig {
	return loadOrSeed(s.root, models.KeySiteConfig, models.DefaultSiteConfig)
}

func (s *SiteConfigRepository) Get() models.SiteConfig {
	s.root.mu.Lock()
	defer s.root.mu.Unlock()
	return s.load()
}

func (s *SiteConfigRepository) Update(patch models.SiteConfigPatch) (models.SiteConfig, error) {
	s.root.mu.Lock()
	defer s.root.mu.Unlock()

	conf := s.load()
	conf.Apply(patch)
	if err := validateRecord(&conf); err != nil {
		return models.SiteConfig{}, err
	}
	if err := s.root.persist(models.KeySiteConfig, conf); err != nil {
		return models.SiteConfig{}, err
	}
	return conf, nil
}
