package pages

import (
	"context"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	aboutModel "azadi_backend/internals/features/pages/about_page/model"
	contactModel "azadi_backend/internals/features/pages/contact_page/model"
	homeModel "azadi_backend/internals/features/pages/home_page/model"
	"azadi_backend/internals/seeds/leaders"
	"azadi_backend/internals/storage"
)

func defaultAboutPage() *aboutModel.AboutPage {
	p := &aboutModel.AboutPage{
		HistoryP1:     "আজাদী সমাজ কল্যাণ সংঘ ১০ জুন ১৯৮৮ সালে প্রতিষ্ঠিত হয়েছিল কয়েকজন সমাজসেবী তরুণের উদ্যোগে। আমাদের লক্ষ্য ছিল স্থানীয় সম্প্রদায়ের সুবিধাবঞ্চিত মানুষদের সাহায্য করা।",
		HistoryP1En:   "Azadi Social Welfare Organization was founded on 10 June 1988 by a group of social service-minded youth. Our goal was to help the underprivileged people of the local community.",
		HistoryP2:     "গত ৩৬ বছরে আমরা হাজারেরও বেশি মানুষের জীবনে ইতিবাচক পরিবর্তন এনেছি। শিক্ষা, স্বাস্থ্য, এবং সামাজিক উন্নয়নে আমাদের কার্যক্রম অব্যাহত রয়েছে।",
		HistoryP2En:   "Over the past 36 years, we have brought positive changes to the lives of more than a thousand people. Our programs in education, health, and social development continue.",
		HistoryP3:     "আমরা বিশ্বাস করি যে একসাথে কাজ করলে আমরা আরও ভালো একটি সমাজ গড়ে তুলতে পারি। আমাদের সাথে যুক্ত হন এবং পরিবর্তনের অংশীদার হন।",
		HistoryP3En:   "We believe that by working together we can build a better society. Join us and be part of the change.",
		StudentsCount: aboutModel.DefaultStudentsCount,
		EventsCount:   aboutModel.DefaultEventsCount,
		YearsCount:    aboutModel.DefaultYearsCount,
		OfficeHours:   aboutModel.DefaultOfficeHours,
		OfficeHoursEn: aboutModel.DefaultOfficeHoursEn,
	}
	p.ID = storage.SingletonID
	return p
}

func defaultHomePage() *homeModel.HomePage {
	hero := leaders.PlaceholderImage
	p := &homeModel.HomePage{
		HeroTitle:             "সেবায় আমরা সর্বদা",
		HeroTitleEn:           "Always in Service",
		HeroDescription:       "শিক্ষা, শান্তি এবং ক্রীড়া কার্যক্রমের মাধ্যমে সমাজের সুবিধাবঞ্চিত মানুষদের জীবন পরিবর্তনে আমরা নিবেদিত।",
		HeroDescriptionEn:     "We are dedicated to changing the lives of underprivileged people through education, peace, and sports programs",
		HeroImage:             &hero,
		FoundedDate:           "১০ জুন ১৯৮৮ থেকে সেবারত",
		FoundedDateEn:         "Serving since 10 June 1988",
		ServicesTitle:         "আমাদের সেবা কার্যক্রম",
		ServicesTitleEn:       "Our Services",
		ServicesDescription:   "আমরা বিভিন্ন সেবামূলক কার্যক্রমের মাধ্যমে সমাজের উন্নয়নে নিরলসভাবে কাজ করছি",
		ServicesDescriptionEn: "We work tirelessly for the development of society through various service programs",
		EventsTitle:           "সাম্প্রতিক কার্যক্রম",
		EventsTitleEn:         "Recent Events",
	}
	p.ID = storage.SingletonID
	return p
}

func defaultContactPage() *contactModel.ContactPage {
	p := &contactModel.ContactPage{
		SundayThursdayBn: contactModel.DefaultSundayThursdayBn,
		SundayThursdayEn: contactModel.DefaultSundayThursdayEn,
		FridayBn:         contactModel.DefaultFridayBn,
		FridayEn:         contactModel.DefaultFridayEn,
		SaturdayBn:       contactModel.DefaultSaturdayBn,
		SaturdayEn:       contactModel.DefaultSaturdayEn,
	}
	p.ID = storage.SingletonID
	return p
}

// SeedPages writes the default page content; existing rows are left untouched.
func SeedPages(ctx context.Context, db *gorm.DB) error {
	if err := storage.NewSingleton[aboutModel.AboutPage](db).Seed(ctx, defaultAboutPage()); err != nil {
		return err
	}
	if err := storage.NewSingleton[homeModel.HomePage](db).Seed(ctx, defaultHomePage()); err != nil {
		return err
	}
	if err := storage.NewSingleton[contactModel.ContactPage](db).Seed(ctx, defaultContactPage()); err != nil {
		return err
	}
	log.Info().Msg("✅ page content seeded")
	return nil
}
