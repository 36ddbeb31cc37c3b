package seeds

import (
	"log"
	"time"

	articleModel "sinafite_backend/internals/features/articles/model"
	pageModel "sinafite_backend/internals/features/pages/model"
	serviceModel "sinafite_backend/internals/features/services/model"
	userModel "sinafite_backend/internals/features/users/model"
	"sinafite_backend/internals/storage"
)

// Run populates the default accounts and sample content on first start.
// A single probe of the users collection gates the whole routine, so
// running it on every startup is a no-op once data exists.
func Run(store *storage.Store) error {
	n, err := store.Users.Count()
	if err != nil {
		return err
	}
	if n > 0 {
		log.Println("[INFO] seed: data already present, skipping")
		return nil
	}

	admin, err := store.Users.Create(&userModel.UserModel{
		Username: "admin",
		Password: "admin123",
		Name:     "Administrador",
		Email:    "admin@sinafite-df.org.br",
		Role:     userModel.RoleAdmin,
	})
	if err != nil {
		return err
	}

	if _, err := store.Users.Create(&userModel.UserModel{
		Username: "membro",
		Password: "membro123",
		Name:     "Membro",
		Email:    "membro@example.com",
		Role:     userModel.RoleMember,
	}); err != nil {
		return err
	}

	now := time.Now()
	articles := []articleModel.ArticleModel{
		{
			Title:       "Assembleia aprova nova proposta de reajuste salarial",
			Content:     "Em reunião realizada ontem, os filiados aprovaram a proposta de reajuste salarial apresentada pelo Governo do DF após negociações intensas. A proposta inclui um aumento de 5% para este ano e mais 5% para o próximo ano, além de ajustes nos benefícios e vantagens da categoria.",
			Summary:     "Categoria aprova proposta de reajuste apresentada pelo Governo do DF após negociações.",
			Category:    "Notícias",
			PublishedAt: now,
			AuthorID:    &admin.ID,
		},
		{
			Title:       "Seminário sobre reforma tributária acontecerá em agosto",
			Content:     "O Sinafite-DF realizará um seminário para discutir os impactos da reforma tributária na atuação dos auditores fiscais do DF. O evento contará com palestrantes renomados e ocorrerá no Centro de Convenções de Brasília.",
			Summary:     "Seminário discutirá os impactos da reforma tributária na atuação dos auditores fiscais do DF.",
			Category:    "Eventos",
			PublishedAt: now.AddDate(0, 0, -7),
			AuthorID:    &admin.ID,
		},
		{
			Title:       "Sindicato obtém vitória em ação coletiva sobre férias",
			Content:     "Após anos de disputa judicial, o Sinafite-DF conseguiu decisão favorável em processo sobre pagamento retroativo de adicional de férias. Esta é uma importante vitória para os auditores fiscais do DF.",
			Summary:     "Sentença favorável garante direito a benefício retroativo para auditores fiscais.",
			Category:    "Jurídico",
			PublishedAt: now.AddDate(0, 0, -14),
			AuthorID:    &admin.ID,
		},
	}
	for i := range articles {
		if _, err := store.Articles.Create(&articles[i]); err != nil {
			return err
		}
	}

	services := []serviceModel.ServiceModel{
		{
			Title:       "Assessoria Jurídica",
			Description: "Suporte jurídico especializado para questões profissionais e administrativas, com atendimento personalizado.",
			Icon:        "scale",
		},
		{
			Title:       "Representação Política",
			Description: "Atuação junto ao Governo do DF e órgãos legislativos para defender os interesses da categoria.",
			Icon:        "government",
		},
		{
			Title:       "Convênios",
			Description: "Parcerias com empresas e instituições que oferecem descontos e condições especiais para filiados.",
			Icon:        "handshake",
		},
		{
			Title:       "Capacitação Profissional",
			Description: "Cursos, palestras e eventos para aprimoramento técnico e desenvolvimento profissional dos auditores.",
			Icon:        "graduation-cap",
		},
	}
	for i := range services {
		if _, err := store.Services.Create(&services[i]); err != nil {
			return err
		}
	}

	pages := []pageModel.PageModel{
		{
			Slug:    "home",
			Title:   "Página Inicial",
			Content: `{"hero":{"title":"Defendendo os direitos dos Auditores Fiscais do DF","subtitle":"Representando e protegendo os interesses dos integrantes da Carreira Auditoria Fiscal do Tesouro do Distrito Federal."}}`,
		},
		{
			Slug:    "about",
			Title:   "Sobre Nós",
			Content: "# História do Sinafite-DF\n\nFundado em 1995, o Sinafite-DF tem como objetivo representar e defender os interesses dos Auditores Fiscais do Distrito Federal.\n\n## Missão\n\nRepresentar, defender e valorizar os Auditores Fiscais do DF, promovendo a união da categoria.\n\n## Valores\n\n- Ética e transparência\n- Compromisso com a justiça fiscal\n- Valorização profissional\n- Responsabilidade social",
		},
	}
	for i := range pages {
		if _, err := store.Pages.Create(&pages[i]); err != nil {
			return err
		}
	}

	log.Println("[INFO] seed: default data created")
	return nil
}
