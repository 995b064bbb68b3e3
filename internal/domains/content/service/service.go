package service

import (
	"context"

	"drive4less/infras/otel"
	"drive4less/internal/domains/content/model"
	"drive4less/shared/constant"
)

// Content serves the dealership's marketing copy. The storefront renders
// these pages from the API so the copy can move to a CMS later without
// touching the clients.
type Content interface {
	Home(ctx context.Context) (model.HomeContent, error)
	About(ctx context.Context) (model.AboutContent, error)
	Services(ctx context.Context) (model.ServicesContent, error)
	Contact(ctx context.Context) (model.ContactContent, error)
}

type serviceImpl struct {
	otel otel.Otel
}

func New(otel otel.Otel) Content {
	return &serviceImpl{
		otel: otel,
	}
}

func (s *serviceImpl) Home(ctx context.Context) (model.HomeContent, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Home")
	defer scope.End()

	return model.HomeContent{
		Headline:  "Find Your Perfect Ride in Zambia",
		Tagline:   "Quality checked vehicles at prices you can afford. Browse our collection of reliable cars for first-time buyers, families, and professionals.",
		HeroImage: constant.PlaceholderImage,
		Logo:      constant.FallbackImage,
		CallsToAction: []model.CallToAction{
			{Label: "Browse Inventory", Path: "/inventory"},
			{Label: "Schedule Test Drive", Path: "/contact"},
		},
	}, nil
}

func (s *serviceImpl) About(ctx context.Context) (model.AboutContent, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".About")
	defer scope.End()

	return model.AboutContent{
		Title:    "About Drive 4 Less Zambia",
		Subtitle: "Your trusted partner in finding quality vehicles at affordable prices",
		Story: []string{
			"Drive 4 Less Zambia was founded with a simple mission: to make quality vehicles accessible to every Zambian family and professional.",
			"We believe buying a car should be transparent, trustworthy, and hassle-free. Every vehicle in our inventory is carefully inspected so our customers drive away with confidence.",
		},
		Owner: "Namangolwa Sitali",
		WhyUs: []string{
			"Rigorous quality inspection on every vehicle",
			"Transparent pricing with no hidden costs",
			"Flexible payment: bank transfer or down payment with balance on delivery",
			"Delivery in less than 10 days across Zambia",
			"Professional after-sales support and warranty",
			"Expert team ready to help you choose the right car",
		},
		Commitment: "Your road to quality and affordable cars in Zambia.",
		Milestones: []model.Milestone{
			{Figure: "500+", Label: "Happy Customers"},
			{Figure: "200+", Label: "Vehicles Sold"},
			{Figure: "10+", Label: "Years Experience"},
		},
	}, nil
}

func (s *serviceImpl) Services(ctx context.Context) (model.ServicesContent, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Services")
	defer scope.End()

	return model.ServicesContent{
		Title:    "Our Services",
		Subtitle: "More than a dealership, we take care of the whole journey",
		Services: []model.Service{
			{Title: "Quality Assurance", Description: "Every vehicle goes through a comprehensive 50-point inspection before it reaches our showroom."},
			{Title: "Flexible Financing", Description: "Pay by bank transfer or secure your car with a down payment and settle the balance on delivery."},
			{Title: "After-Sales Support", Description: "Warranty packages and maintenance support keep you on the road long after the purchase."},
			{Title: "Fast Delivery", Description: "We deliver anywhere in Zambia in less than 10 days."},
		},
		PaymentOptions: []model.PaymentOption{
			{Title: "Bank Transfer", Description: "Pay the full amount upfront by bank transfer."},
			{Title: "Down Payment + Delivery", Description: "Reserve with a down payment and pay the balance when the vehicle is delivered."},
			{Title: "Fast Delivery", Description: "Delivery across Zambia in less than 10 days."},
		},
		Warranty: []model.WarrantyItem{
			{Title: "Standard Warranty", Description: "6 months or 10,000 km, whichever comes first."},
			{Title: "Extended Warranty", Description: "Coverage for up to 2 years."},
			{Title: "Maintenance Packages", Description: "Scheduled servicing at discounted rates."},
			{Title: "24/7 Support", Description: "Our support line is always open."},
		},
	}, nil
}

func (s *serviceImpl) Contact(ctx context.Context) (model.ContactContent, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Contact")
	defer scope.End()

	return model.ContactContent{
		Title:    "Get in Touch",
		Subtitle: "Visit our showroom or reach out, we respond within a business day",
		Phone:    "+260 764 205 331",
		WhatsApp: "https://wa.me/260764205331",
		Email:    "drive4less23@gmail.com",
		Address:  "123 Great North Road, Lusaka, Zambia",
		Hours: []string{
			"Monday - Friday: 9:00 - 17:00",
			"Saturday: 10:00 - 14:00",
			"Sunday: Closed",
		},
	}, nil
}
