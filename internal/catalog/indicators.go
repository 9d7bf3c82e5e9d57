package catalog

import "github.com/grit-analytics/opportunity-map/internal/model"

// indicators is the built-in catalog, in domain order. PTRAF belongs to the
// Environmental domain in the source dataset even though it also feeds
// mobility narratives; it is listed once.
var indicators = []Indicator{
	// Socioeconomic
	{ID: "LOWINCPCT", DisplayName: "Low Income Population", Domain: model.DomainSocioeconomic},
	{ID: "UNEMPPCT", DisplayName: "Unemployment Rate", Domain: model.DomainSocioeconomic},
	{ID: "LINGISOPCT", DisplayName: "Limited English Proficiency", Domain: model.DomainSocioeconomic},
	{ID: "LESSHSPCT", DisplayName: "Less than High School Education", Domain: model.DomainSocioeconomic},
	{ID: "E_POV150_P", DisplayName: "Population Below 150% Poverty Level", Domain: model.DomainSocioeconomic},
	{ID: "With_PublicAssIncome_P", DisplayName: "Public Assistance Income", Domain: model.DomainSocioeconomic},
	{ID: "With_SSI_P", DisplayName: "Supplemental Security Income", Domain: model.DomainSocioeconomic},
	{ID: "E_UNINSUR_P", DisplayName: "Uninsured Population", Domain: model.DomainSocioeconomic},
	{ID: "With_Medicaid_P", DisplayName: "Medicaid Coverage", Domain: model.DomainSocioeconomic},
	{ID: "percent_food_insecure", DisplayName: "Food Insecurity Rate", Domain: model.DomainSocioeconomic},
	{ID: "LIFEEXPPCT", DisplayName: "Life Expectancy", Domain: model.DomainSocioeconomic, HigherIsBetter: true},

	// Housing
	{ID: "PRE1960PCT", DisplayName: "Housing Built Before 1960", Domain: model.DomainHousing},
	{ID: "E_HBURD_P", DisplayName: "Housing Cost Burden", Domain: model.DomainHousing},
	{ID: "House_Vacant_P", DisplayName: "Vacant Housing", Domain: model.DomainHousing},
	{ID: "E_MUNIT_P", DisplayName: "Multi-Unit Housing", Domain: model.DomainHousing},
	{ID: "E_MOBILE_P", DisplayName: "Mobile Homes", Domain: model.DomainHousing},
	{ID: "E_CROWD_P", DisplayName: "Crowded Housing", Domain: model.DomainHousing},
	{ID: "Owner_occupied_P", DisplayName: "Owner-Occupied Housing", Domain: model.DomainHousing, HigherIsBetter: true},
	{ID: "Mean_Proportion_HHIncome", DisplayName: "Housing Cost as % of Income", Domain: model.DomainHousing},
	{ID: "percent_homeowners", DisplayName: "Homeownership Rate", Domain: model.DomainHousing, HigherIsBetter: true},

	// Mobility
	{ID: "E_NOVEH_P", DisplayName: "No Vehicle Access", Domain: model.DomainMobility},
	{ID: "Mean_Transportation_time(min)", DisplayName: "Average Commute Time", Domain: model.DomainMobility},
	{ID: "Work_Drivealone_P", DisplayName: "Drive Alone to Work", Domain: model.DomainMobility},
	{ID: "Work_Carpooled_P", DisplayName: "Carpool to Work", Domain: model.DomainMobility, HigherIsBetter: true},
	{ID: "Work_PublicTransportation_P", DisplayName: "Public Transit to Work", Domain: model.DomainMobility, HigherIsBetter: true},
	{ID: "Work_Walk_P", DisplayName: "Walk to Work", Domain: model.DomainMobility, HigherIsBetter: true},
	{ID: "Work_Fromhome_P", DisplayName: "Work from Home", Domain: model.DomainMobility, HigherIsBetter: true},

	// Transportation Safety
	{ID: "Percent_Severe/Fatal", DisplayName: "Severe/Fatal Crashes", Domain: model.DomainTransportationSafety},
	{ID: "Avg_Person_Injured/Kill", DisplayName: "Person Injuries/Fatalities", Domain: model.DomainTransportationSafety},
	{ID: "Avg_Pedestrian_Injured/Kill", DisplayName: "Pedestrian Injuries/Fatalities", Domain: model.DomainTransportationSafety},
	{ID: "Percent_Alcohol_Related", DisplayName: "Alcohol-Related Crashes", Domain: model.DomainTransportationSafety},
	{ID: "Percent_Distracted_Related", DisplayName: "Distracted Driving Crashes", Domain: model.DomainTransportationSafety},
	{ID: "Percent_Drowsy_Related", DisplayName: "Drowsy Driving Crashes", Domain: model.DomainTransportationSafety},
	{ID: "Percent_Drug_Related", DisplayName: "Drug-Related Crashes", Domain: model.DomainTransportationSafety},
	{ID: "Percent_Speed_Related", DisplayName: "Speed-Related Crashes", Domain: model.DomainTransportationSafety},
	{ID: "Percent_Hitrun_Related", DisplayName: "Hit and Run Crashes", Domain: model.DomainTransportationSafety},
	{ID: "Percent_Schoolzone_Related", DisplayName: "School Zone Crashes", Domain: model.DomainTransportationSafety},
	{ID: "Percent_Lgtruck_Related", DisplayName: "Large Truck Crashes", Domain: model.DomainTransportationSafety},
	{ID: "Percent_Young_Related", DisplayName: "Young Driver Crashes", Domain: model.DomainTransportationSafety},
	{ID: "Percent_Senior_Related", DisplayName: "Senior Driver Crashes", Domain: model.DomainTransportationSafety},
	{ID: "Percent_Bike_Related", DisplayName: "Bicycle Crashes", Domain: model.DomainTransportationSafety},
	{ID: "Percent_Night_Related", DisplayName: "Nighttime Crashes", Domain: model.DomainTransportationSafety},
	{ID: "Percent_Workzone_Related", DisplayName: "Work Zone Crashes", Domain: model.DomainTransportationSafety},

	// Environmental
	{ID: "PM25", DisplayName: "Fine Particulate Matter", Domain: model.DomainEnvironmental},
	{ID: "OZONE", DisplayName: "Ozone Level", Domain: model.DomainEnvironmental},
	{ID: "DSLPM", DisplayName: "Diesel Particulate Matter", Domain: model.DomainEnvironmental},
	{ID: "NO2", DisplayName: "Nitrogen Dioxide", Domain: model.DomainEnvironmental},
	{ID: "CANCER", DisplayName: "Cancer Risk", Domain: model.DomainEnvironmental},
	{ID: "RESP", DisplayName: "Respiratory Hazard", Domain: model.DomainEnvironmental},
	{ID: "PTRAF", DisplayName: "Traffic Proximity", Domain: model.DomainEnvironmental},
	{ID: "PWDIS", DisplayName: "Wastewater Discharge", Domain: model.DomainEnvironmental},
	{ID: "PNPL", DisplayName: "Superfund Sites", Domain: model.DomainEnvironmental},
	{ID: "PRMP", DisplayName: "RMP Facilities", Domain: model.DomainEnvironmental},
	{ID: "PTSDF", DisplayName: "Hazardous Waste Sites", Domain: model.DomainEnvironmental},
	{ID: "UST", DisplayName: "Underground Storage Tanks", Domain: model.DomainEnvironmental},
	{ID: "WATR", DisplayName: "Water Discharge Sites", Domain: model.DomainEnvironmental},
	{ID: "RSEI_AIR", DisplayName: "Air Releases", Domain: model.DomainEnvironmental},

	// Public Health
	{ID: "Total_Calls", DisplayName: "Fire and EMS Incidents", Domain: model.DomainPublicHealth},
	{ID: "Chronic_History", DisplayName: "Chronic Health Conditions", Domain: model.DomainPublicHealth},
	{ID: "Violence_Calls", DisplayName: "Violence-Related Calls", Domain: model.DomainPublicHealth},
	{ID: "CPR_Calls", DisplayName: "Cardiac Arrests", Domain: model.DomainPublicHealth},
	{ID: "Homeless", DisplayName: "Homelessness-Related Calls", Domain: model.DomainPublicHealth},
	{ID: "Domestic", DisplayName: "Domestic-Related Calls", Domain: model.DomainPublicHealth},
	{ID: "Opioid_Calls", DisplayName: "Opioid-Related Emergency Calls", Domain: model.DomainPublicHealth},
	{ID: "Calls_Per_HVU_Caller", DisplayName: "Calls per High Volume User", Domain: model.DomainPublicHealth},

	// Demographics
	{ID: "DISABILITYPCT", DisplayName: "Disability Rate", Domain: model.DomainDemographics},
	{ID: "UNDER5PCT", DisplayName: "Under 5 Years Old", Domain: model.DomainDemographics},
	{ID: "OVER64PCT", DisplayName: "Over 64 Years Old", Domain: model.DomainDemographics},
	{ID: "E_SNGPNT_P", DisplayName: "Single Parent Households", Domain: model.DomainDemographics},
	{ID: "E_GROUPQ_P", DisplayName: "Group Quarters Population", Domain: model.DomainDemographics},
	{ID: "Total_Population", DisplayName: "Total Population", Domain: model.DomainDemographics, HigherIsBetter: true},
	{ID: "Median_Age", DisplayName: "Median Age", Domain: model.DomainDemographics},
	{ID: "Age_Dependency_Ratio", DisplayName: "Age Dependency Ratio", Domain: model.DomainDemographics},
	{ID: "Old-age_Dependency_Ratio", DisplayName: "Old-Age Dependency Ratio", Domain: model.DomainDemographics},
	{ID: "Child_Dependency_Ratio", DisplayName: "Child Dependency Ratio", Domain: model.DomainDemographics},
	{ID: "Prop_White", DisplayName: "White Population", Domain: model.DomainDemographics},
	{ID: "Sex_Ratio(males per 100 females)", DisplayName: "Sex Ratio (males per 100 females)", Domain: model.DomainDemographics},
	{ID: "Prop_Black", DisplayName: "Black Population", Domain: model.DomainDemographics},
	{ID: "Prop_Hisp", DisplayName: "Hispanic Population", Domain: model.DomainDemographics},
}
