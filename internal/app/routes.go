package app

import (
	"github.com/vcrobe/signspeech/internal/app/components/layouts"
	"github.com/vcrobe/signspeech/internal/app/components/pages"
	"github.com/vcrobe/signspeech/internal/locale"
	"github.com/vcrobe/signspeech/router"
	"github.com/vcrobe/signspeech/runtime"
)

// Route names.
const (
	RouteHome         = "home"
	RouteSignToSpeech = "sign-to-speech"
	RouteSpeechToSign = "speech-to-sign"
	RouteSettings     = "settings"
	RouteNotFound     = "not-found"
)

func registerRoutes(engine *router.Engine, mainLayout *layouts.MainLayout, catalog *locale.Catalog) error {
	ml := func() runtime.Component { return mainLayout }

	comingNext := func(featureID string) runtime.ComponentFactory {
		return func() runtime.Component {
			return &pages.ComingNextPage{Catalog: catalog, FeatureID: featureID}
		}
	}

	err := engine.RegisterRoutes([]router.Route{
		{
			Path: "/",
			Name: RouteHome,
			Chain: []router.ComponentMetadata{
				{Factory: ml, TypeID: MainLayout_TypeID},
				{Factory: func() runtime.Component { return &pages.HomePage{Catalog: catalog} }, TypeID: HomePage_TypeID},
			},
		},
		{
			Path: "/sign-to-speech",
			Name: RouteSignToSpeech,
			Chain: []router.ComponentMetadata{
				{Factory: ml, TypeID: MainLayout_TypeID},
				{Factory: comingNext("FeatureSignToSpeech"), TypeID: SignToSpeechPage_TypeID},
			},
		},
		{
			Path: "/speech-to-sign",
			Name: RouteSpeechToSign,
			Chain: []router.ComponentMetadata{
				{Factory: ml, TypeID: MainLayout_TypeID},
				{Factory: comingNext("FeatureSpeechToSign"), TypeID: SpeechToSignPage_TypeID},
			},
		},
		{
			Path: "/settings",
			Name: RouteSettings,
			Chain: []router.ComponentMetadata{
				{Factory: ml, TypeID: MainLayout_TypeID},
				{Factory: comingNext("FeatureSettings"), TypeID: SettingsPage_TypeID},
			},
		},
	})
	if err != nil {
		return err
	}

	return engine.HandleNotFound(router.Route{
		Name: RouteNotFound,
		Chain: []router.ComponentMetadata{
			{Factory: ml, TypeID: MainLayout_TypeID},
			{Factory: func() runtime.Component { return &pages.NotFoundPage{Catalog: catalog} }, TypeID: PageNotFound_TypeID},
		},
	})
}
